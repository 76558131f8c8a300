package engine

import "fmt"

// ResolutionError aborts the run: without an artist there is no pipeline.
type ResolutionError struct {
	Reason string
	Err    error // underlying transport error, nil for content-level failures
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve artist: %s: %v", e.Reason, e.Err)
	}
	return "resolve artist: " + e.Reason
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// PlanningError aborts the run: without an album there are no tracks.
// RawOutput keeps the model text that failed to parse, for diagnostics.
type PlanningError struct {
	Reason    string
	RawOutput string
	Err       error
}

func (e *PlanningError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plan album: %s: %v", e.Reason, e.Err)
	}
	return "plan album: " + e.Reason
}

func (e *PlanningError) Unwrap() error { return e.Err }

// apifyStatusError wraps a non-2xx actor run response. The body excerpt is
// truncated because actor error pages can be large.
type apifyStatusError struct {
	StatusCode int
	Body       string
}

func (e *apifyStatusError) Error() string {
	return fmt.Sprintf("apify returned status %d: %s", e.StatusCode, e.Body)
}
