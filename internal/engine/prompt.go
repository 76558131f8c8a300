package engine

// LLM prompt templates — data only, no logic.

// firstAlbumPrompt asks for the artist's first studio album as strict JSON.
// Args: artist name.
const firstAlbumPrompt = `You are a music expert.

For the artist "%s", identify their FIRST official studio album
(ignore EPs, live albums, compilations, reissues). Then list all songs in
that album in correct order.

You MUST use real, known song titles for this artist. Do NOT invent
placeholders like "Song 1" or tracks from unrelated artists or albums.

Return ONLY JSON with this exact structure (no explanations, no markdown):

{
  "artist": "Scorpions",
  "album_title": "Lovedrive",
  "release_year": 1979,
  "tracks": [
    "Loving You Sunday Morning",
    "Another Piece of Meat",
    "Always Somewhere"
  ]
}

- artist: normalized artist name
- album_title: album title
- release_year: integer year
- tracks: array of song titles (strings), in album order`
