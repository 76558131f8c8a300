package engine

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves lyrics for each track through the Genius lyrics actor.
type Fetcher struct {
	apify       *Apify
	actorID     string
	concurrency int
}

func NewFetcher(apify *Apify, actorID string, concurrency int) *Fetcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Fetcher{apify: apify, actorID: actorID, concurrency: concurrency}
}

type geniusActorInput struct {
	SearchQuery string     `json:"searchQuery"`
	MaxSongs    int        `json:"maxSongs"`
	StartURLs   []startURL `json:"start_urls"`
}

// FetchLyrics returns exactly one TrackResult per input track, in input
// order. Each call is isolated: a failed fetch becomes that track's error
// field and never aborts the batch. Calls run with bounded parallelism;
// positional writes keep the output order independent of scheduling.
func (f *Fetcher) FetchLyrics(ctx context.Context, artist string, tracks []string) []TrackResult {
	results := make([]TrackResult, len(tracks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, title := range tracks {
		g.Go(func() error {
			slog.Debug("fetching lyrics", slog.String("track", title))
			results[i] = f.fetchOne(ctx, artist, title)
			return nil
		})
	}
	_ = g.Wait() // fetchOne never returns an error

	return results
}

// fetchOne is the single-item fault boundary: any transport failure is
// converted to a result value here.
func (f *Fetcher) fetchOne(ctx context.Context, artist, title string) TrackResult {
	input := geniusActorInput{
		SearchQuery: title + " " + artist + " lyrics",
		MaxSongs:    1,
		StartURLs:   []startURL{{URL: "https://genius.com"}},
	}

	var items []geniusItem
	if err := f.apify.RunSync(ctx, f.actorID, input, &items); err != nil {
		metrics.LyricsErrors.Add(1)
		msg := "lyrics actor call failed: " + err.Error()
		return TrackResult{SongTitle: title, LyricsRaw: "", Error: &msg}
	}
	if len(items) == 0 {
		metrics.LyricsErrors.Add(1)
		msg := "no items returned from lyrics actor"
		return TrackResult{SongTitle: title, LyricsRaw: "", Error: &msg}
	}

	// Pass the actor's answer through verbatim: it reports blocked scrapes
	// in the error field instead of failing the run.
	item := items[0]
	if item.Error != nil && *item.Error != "" {
		metrics.LyricsErrors.Add(1)
	} else {
		metrics.LyricsFetched.Add(1)
	}
	return TrackResult{
		SongTitle: title,
		GeniusURL: item.URL,
		LyricsRaw: item.LyricsText,
		Error:     item.Error,
	}
}
