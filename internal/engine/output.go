package engine

import (
	"encoding/json"
	"io"
)

// WriteJSON serializes the result for consumers: 2-space indent, HTML
// escaping off so lyrics text survives verbatim.
func WriteJSON(w io.Writer, result *PipelineResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
