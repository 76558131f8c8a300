// go_firstalbum — first-album lyrics pipeline CLI.
//
// Given a YouTube video URL, resolves the uploading artist through an Apify
// YouTube scraper actor, asks a local Ollama model for the artist's first
// studio album and track list, fetches per-track lyrics through an Apify
// Genius actor, and prints the combined result as JSON on stdout.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_firstalbum/internal/engine"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env not loaded, using system env")
	}
	setupLogging()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <youtube_url>\n", os.Args[0])
		os.Exit(2)
	}
	videoURL := os.Args[1]
	if !validVideoURL(videoURL) {
		slog.Error("invalid video URL", slog.String("url", videoURL))
		os.Exit(2)
	}

	token := env.Str("APIFY_TOKEN", "")
	if token == "" {
		slog.Error("APIFY_TOKEN environment variable must be set")
		os.Exit(1)
	}

	pipeline := engine.New(loadConfig(token))

	result, err := pipeline.Run(context.Background(), videoURL)
	if err != nil {
		slog.Error("pipeline failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Debug("run metrics\n" + engine.FormatMetrics())

	if err := engine.WriteJSON(os.Stdout, result); err != nil {
		slog.Error("encode result", slog.Any("error", err))
		os.Exit(1)
	}
}

func loadConfig(token string) engine.Config {
	return engine.Config{
		ApifyToken:        token,
		ApifyBaseURL:      env.Str("APIFY_BASE_URL", engine.DefaultApifyBaseURL),
		YouTubeActorID:    env.Str("YOUTUBE_ACTOR_ID", engine.DefaultYouTubeActor),
		GeniusActorID:     env.Str("GENIUS_ACTOR_ID", engine.DefaultGeniusActor),
		OllamaBaseURL:     env.Str("OLLAMA_URL", engine.DefaultOllamaBaseURL),
		OllamaModel:       env.Str("OLLAMA_MODEL", engine.DefaultOllamaModel),
		LyricsConcurrency: env.Int("LYRICS_CONCURRENCY", engine.DefaultLyricsConcurrency),
		ApifyClient:       engine.NewHTTPClient(env.Duration("APIFY_TIMEOUT", engine.DefaultApifyTimeout)),
		OllamaClient:      engine.NewHTTPClient(env.Duration("OLLAMA_TIMEOUT", engine.DefaultOllamaTimeout)),
	}
}

// setupLogging sends slog to stderr so stdout stays clean for the JSON result.
func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(env.Str("LOG_LEVEL", "info")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// validVideoURL checks syntactic validity only; the actor does the rest.
func validVideoURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
