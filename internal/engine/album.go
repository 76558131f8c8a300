package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// Planner asks the LLM for the artist's first studio album and its tracks.
type Planner struct {
	llm *Ollama
}

func NewPlanner(llm *Ollama) *Planner {
	return &Planner{llm: llm}
}

// PlanAlbum prompts the model and parses its answer as strict JSON.
// Model output is an untrusted parser boundary: anything that does not
// unmarshal into the expected shape fails closed with a PlanningError —
// no heuristic recovery, never a partially populated album.
func (p *Planner) PlanAlbum(ctx context.Context, artist string) (AlbumPlan, error) {
	raw, err := p.llm.Generate(ctx, fmt.Sprintf(firstAlbumPrompt, artist))
	if err != nil {
		return AlbumPlan{}, &PlanningError{Reason: "llm call failed", Err: err}
	}

	text := sliceJSONObject(stripFences(raw))

	var out albumOutput
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return AlbumPlan{}, &PlanningError{Reason: "unparseable model output", RawOutput: raw, Err: err}
	}

	tracks := cleanTracks(out.Tracks)
	if out.AlbumTitle == "" || len(tracks) == 0 {
		return AlbumPlan{}, &PlanningError{Reason: "incomplete album data", RawOutput: raw}
	}

	if out.Artist == "" {
		out.Artist = artist
	}

	slog.Debug("album planned",
		slog.String("album", out.AlbumTitle),
		slog.Int("tracks", len(tracks)),
	)
	return AlbumPlan{
		Album: Album{
			Artist:      out.Artist,
			AlbumTitle:  out.AlbumTitle,
			ReleaseYear: out.ReleaseYear,
		},
		Tracks: tracks,
	}, nil
}

// cleanTracks trims titles and drops blanks, preserving order.
func cleanTracks(tracks []string) []string {
	out := make([]string, 0, len(tracks))
	for _, t := range tracks {
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}
