package engine

import (
	"context"
	"log/slog"
	"strings"
)

// Resolver extracts the uploading artist's name from a video URL via the
// YouTube scraper actor.
type Resolver struct {
	apify   *Apify
	actorID string
}

func NewResolver(apify *Apify, actorID string) *Resolver {
	return &Resolver{apify: apify, actorID: actorID}
}

type youtubeActorInput struct {
	StartURLs        []startURL `json:"startUrls"`
	MaxResults       int        `json:"maxResults"`
	MaxResultsShorts int        `json:"maxResultsShorts"`
	MaxResultStreams int        `json:"maxResultStreams"`
}

type startURL struct {
	URL string `json:"url"`
}

// Resolve runs the YouTube actor once and returns the channel display name.
// No usable name is a content-level failure; both kinds abort the run.
func (r *Resolver) Resolve(ctx context.Context, videoURL string) (string, error) {
	input := youtubeActorInput{
		StartURLs:  []startURL{{URL: videoURL}},
		MaxResults: 1,
	}

	var items []youtubeItem
	if err := r.apify.RunSync(ctx, r.actorID, input, &items); err != nil {
		return "", &ResolutionError{Reason: "youtube actor call failed", Err: err}
	}
	if len(items) == 0 {
		return "", &ResolutionError{Reason: "artist not found: youtube actor returned no items"}
	}

	artist := artistName(items[0])
	if artist == "" {
		return "", &ResolutionError{Reason: "artist not found"}
	}

	slog.Debug("artist resolved", slog.String("artist", artist), slog.String("url", videoURL))
	return artist, nil
}

// artistName returns the first non-empty channel name field.
func artistName(item youtubeItem) string {
	for _, v := range []string{item.ChannelTitle, item.ChannelName, item.Uploader, item.Author} {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
