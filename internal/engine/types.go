package engine

// --- Pipeline output types (JSON, printed to stdout) ---

// PipelineResult is the top-level output of one run. Assembled once by
// Pipeline.Run and never mutated afterwards.
type PipelineResult struct {
	InputYouTubeURL   string        `json:"input_youtube_url"`
	ArtistFromYouTube string        `json:"artist_from_youtube"`
	Album             Album         `json:"album"`
	Tracks            []TrackResult `json:"tracks"`
}

// Album is the artist's first studio album as reported by the LLM.
type Album struct {
	Artist      string `json:"artist"`
	AlbumTitle  string `json:"album_title"`
	ReleaseYear *int   `json:"release_year"` // nil when the model did not report a year
}

// TrackResult is one track's lyrics outcome. Error is populated instead
// of LyricsRaw when lyrics could not be retrieved; a failed track never
// aborts the batch.
type TrackResult struct {
	SongTitle string  `json:"song_title"`
	GeniusURL *string `json:"genius_url"`
	LyricsRaw string  `json:"lyrics_raw"`
	Error     *string `json:"error"`
}

// AlbumPlan is the planner's full answer: the album plus its ordered track titles.
type AlbumPlan struct {
	Album  Album
	Tracks []string
}

// --- Collaborator dataset items ---

// youtubeItem is one dataset item from the YouTube scraper actor.
// Actor versions expose the channel name under different keys,
// hence the fallback chain in artistName.
type youtubeItem struct {
	ChannelTitle string `json:"channelTitle"`
	ChannelName  string `json:"channelName"`
	Uploader     string `json:"uploader"`
	Author       string `json:"author"`
}

// geniusItem is one dataset item from the Genius lyrics actor. The actor
// never fails hard on a blocked scrape: it downgrades to empty lyrics
// plus a populated error field.
type geniusItem struct {
	URL        *string `json:"url"`
	LyricsText string  `json:"lyricsText"`
	Error      *string `json:"error"`
}

// albumOutput is the JSON structure the LLM is instructed to return.
type albumOutput struct {
	Artist      string   `json:"artist"`
	AlbumTitle  string   `json:"album_title"`
	ReleaseYear *int     `json:"release_year"`
	Tracks      []string `json:"tracks"`
}
