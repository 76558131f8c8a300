package engine

import (
	"net/http"
	"time"
)

// Built-in actor identifiers, overrideable via YOUTUBE_ACTOR_ID / GENIUS_ACTOR_ID.
const (
	DefaultApifyBaseURL  = "https://api.apify.com/v2/acts"
	DefaultYouTubeActor  = "streamers~youtube-scraper"
	DefaultGeniusActor   = "ktmnk~genius-free-lyrics"
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultOllamaModel   = "llama3.2:1b"

	// Actor runs and local generation are slow; the run-sync endpoint can
	// block for minutes while the actor executes.
	DefaultApifyTimeout  = 600 * time.Second
	DefaultOllamaTimeout = 600 * time.Second

	DefaultLyricsConcurrency = 3
)

// Config holds all pipeline configuration, injected from main.
type Config struct {
	ApifyToken     string
	ApifyBaseURL   string
	YouTubeActorID string
	GeniusActorID  string

	OllamaBaseURL string
	OllamaModel   string

	LyricsConcurrency int // parallel lyrics fetches; 1 = sequential

	ApifyClient  *http.Client
	OllamaClient *http.Client
}

// NewHTTPClient returns a client with the given overall timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// withDefaults fills zero-valued fields so New can be called with a
// minimal Config in tests.
func (c Config) withDefaults() Config {
	if c.ApifyBaseURL == "" {
		c.ApifyBaseURL = DefaultApifyBaseURL
	}
	if c.YouTubeActorID == "" {
		c.YouTubeActorID = DefaultYouTubeActor
	}
	if c.GeniusActorID == "" {
		c.GeniusActorID = DefaultGeniusActor
	}
	if c.OllamaBaseURL == "" {
		c.OllamaBaseURL = DefaultOllamaBaseURL
	}
	if c.OllamaModel == "" {
		c.OllamaModel = DefaultOllamaModel
	}
	if c.LyricsConcurrency <= 0 {
		c.LyricsConcurrency = DefaultLyricsConcurrency
	}
	if c.ApifyClient == nil {
		c.ApifyClient = &http.Client{Timeout: DefaultApifyTimeout}
	}
	if c.OllamaClient == nil {
		c.OllamaClient = &http.Client{Timeout: DefaultOllamaTimeout}
	}
	return c
}
