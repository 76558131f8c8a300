package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across a run.
var metrics struct {
	ActorRuns     atomic.Int64
	ActorErrors   atomic.Int64
	LLMCalls      atomic.Int64
	LLMErrors     atomic.Int64
	LyricsFetched atomic.Int64
	LyricsErrors  atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"actor_runs":     metrics.ActorRuns.Load(),
		"actor_errors":   metrics.ActorErrors.Load(),
		"llm_calls":      metrics.LLMCalls.Load(),
		"llm_errors":     metrics.LLMErrors.Load(),
		"lyrics_fetched": metrics.LyricsFetched.Load(),
		"lyrics_errors":  metrics.LyricsErrors.Load(),
	}
}

// FormatMetrics returns counters in a simple text format for debug logging.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"actor_runs", "actor_errors",
		"llm_calls", "llm_errors",
		"lyrics_fetched", "lyrics_errors",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
