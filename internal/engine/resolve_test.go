package engine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestArtistName(t *testing.T) {
	tests := []struct {
		name string
		item youtubeItem
		want string
	}{
		{
			name: "channel title preferred",
			item: youtubeItem{ChannelTitle: "Scorpions", Uploader: "someone else"},
			want: "Scorpions",
		},
		{
			name: "channel name fallback",
			item: youtubeItem{ChannelName: "Scorpions"},
			want: "Scorpions",
		},
		{
			name: "uploader fallback",
			item: youtubeItem{Uploader: "Scorpions"},
			want: "Scorpions",
		},
		{
			name: "author fallback",
			item: youtubeItem{Author: "Scorpions"},
			want: "Scorpions",
		},
		{
			name: "whitespace trimmed",
			item: youtubeItem{ChannelTitle: "  Scorpions  "},
			want: "Scorpions",
		},
		{
			name: "blank fields skipped",
			item: youtubeItem{ChannelTitle: "   ", Author: "Scorpions"},
			want: "Scorpions",
		},
		{
			name: "all empty",
			item: youtubeItem{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artistName(tt.item)
			if got != tt.want {
				t.Errorf("artistName() = %q, want %q", got, tt.want)
			}
		})
	}
}

// fakeActorServer responds to any run-sync-get-dataset-items call with the
// given status and body.
func fakeActorServer(t *testing.T, status int, items any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/run-sync-get-dataset-items") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("token") != "test-token" {
			t.Errorf("missing token query param")
		}
		w.WriteHeader(status)
		if items != nil {
			json.NewEncoder(w).Encode(items)
		}
	}))
}

func newTestResolver(srv *httptest.Server) *Resolver {
	apify := NewApify(srv.URL, "test-token", srv.Client())
	return NewResolver(apify, "streamers~youtube-scraper")
}

func TestResolve(t *testing.T) {
	srv := fakeActorServer(t, 200, []map[string]any{
		{"channelTitle": "Scorpions", "title": "Lovedrive (Official Video)"},
	})
	defer srv.Close()

	artist, err := newTestResolver(srv).Resolve(context.Background(), "https://www.youtube.com/watch?v=X27IfAgzhTY")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if artist != "Scorpions" {
		t.Errorf("Resolve() = %q, want %q", artist, "Scorpions")
	}
}

func TestResolveNoItems(t *testing.T) {
	srv := fakeActorServer(t, 200, []map[string]any{})
	defer srv.Close()

	_, err := newTestResolver(srv).Resolve(context.Background(), "https://www.youtube.com/watch?v=X27IfAgzhTY")
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("Resolve() error = %v, want ResolutionError", err)
	}
	if !strings.Contains(resErr.Reason, "artist not found") {
		t.Errorf("Reason = %q, want artist not found", resErr.Reason)
	}
}

func TestResolveNoUsableName(t *testing.T) {
	srv := fakeActorServer(t, 200, []map[string]any{
		{"title": "some video", "channelTitle": "   "},
	})
	defer srv.Close()

	_, err := newTestResolver(srv).Resolve(context.Background(), "https://www.youtube.com/watch?v=X27IfAgzhTY")
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("Resolve() error = %v, want ResolutionError", err)
	}
	if resErr.Reason != "artist not found" {
		t.Errorf("Reason = %q, want %q", resErr.Reason, "artist not found")
	}
}

func TestResolveActorFailure(t *testing.T) {
	srv := fakeActorServer(t, 500, map[string]string{"error": "actor crashed"})
	defer srv.Close()

	_, err := newTestResolver(srv).Resolve(context.Background(), "https://www.youtube.com/watch?v=X27IfAgzhTY")
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("Resolve() error = %v, want ResolutionError", err)
	}
	var statusErr *apifyStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 500 {
		t.Errorf("expected wrapped apifyStatusError with status 500, got %v", err)
	}
}
