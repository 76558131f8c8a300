package engine

import (
	"context"
	"log/slog"
)

// Pipeline wires the three stages together: resolve the artist from the
// video URL, plan the first studio album, fetch per-track lyrics.
type Pipeline struct {
	resolver *Resolver
	planner  *Planner
	fetcher  *Fetcher
}

// New builds a pipeline from the given configuration.
func New(c Config) *Pipeline {
	c = c.withDefaults()

	apify := NewApify(c.ApifyBaseURL, c.ApifyToken, c.ApifyClient)
	llm := NewOllama(c.OllamaBaseURL, c.OllamaModel, c.OllamaClient)

	return &Pipeline{
		resolver: NewResolver(apify, c.YouTubeActorID),
		planner:  NewPlanner(llm),
		fetcher:  NewFetcher(apify, c.GeniusActorID, c.LyricsConcurrency),
	}
}

// Run executes the pipeline for one video URL. Stages 1 and 2 are fatal on
// failure (ResolutionError, PlanningError); stage 3 captures per-track
// failures inside the result and never fails the run.
func (p *Pipeline) Run(ctx context.Context, videoURL string) (*PipelineResult, error) {
	artist, err := p.resolver.Resolve(ctx, videoURL)
	if err != nil {
		return nil, err
	}
	slog.Info("artist from youtube", slog.String("artist", artist))

	plan, err := p.planner.PlanAlbum(ctx, artist)
	if err != nil {
		return nil, err
	}
	slog.Info("first album from llm",
		slog.String("album", plan.Album.AlbumTitle),
		slog.Any("year", plan.Album.ReleaseYear),
		slog.Int("tracks", len(plan.Tracks)),
	)

	tracks := p.fetcher.FetchLyrics(ctx, artist, plan.Tracks)

	return &PipelineResult{
		InputYouTubeURL:   videoURL,
		ArtistFromYouTube: artist,
		Album:             plan.Album,
		Tracks:            tracks,
	}, nil
}
