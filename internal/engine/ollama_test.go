package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json fence",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "no fence",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n{\"a\": 1}\n  ",
			want: `{"a": 1}`,
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripFences(tt.in)
			if got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSliceJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"album_title": "Lovedrive"}`,
			want: `{"album_title": "Lovedrive"}`,
		},
		{
			name: "prose around object",
			in:   `Sure! Here is the JSON you asked for: {"album_title": "Lovedrive"} Hope that helps.`,
			want: `{"album_title": "Lovedrive"}`,
		},
		{
			name: "nested braces",
			in:   `answer: {"album": {"title": "Lovedrive"}}`,
			want: `{"album": {"title": "Lovedrive"}}`,
		},
		{
			name: "no braces passthrough",
			in:   "I cannot answer that.",
			want: "I cannot answer that.",
		},
		{
			name: "reversed braces passthrough",
			in:   "} not json {",
			want: "} not json {",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sliceJSONObject(tt.in)
			if got != tt.want {
				t.Errorf("sliceJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOllamaGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "llama3.2:1b" {
			t.Errorf("model = %q, want llama3.2:1b", req.Model)
		}
		if req.Stream {
			t.Error("stream should be false")
		}
		json.NewEncoder(w).Encode(generateResponse{Response: "  hello world \n"})
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "llama3.2:1b", srv.Client())
	got, err := o.Generate(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("Generate() = %q, want %q", got, "hello world")
	}
}

func TestOllamaGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "llama3.2:1b", srv.Client())
	if _, err := o.Generate(context.Background(), "say hello"); err == nil {
		t.Fatal("Generate() expected error on 500 response")
	}
}
