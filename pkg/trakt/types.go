// Package trakt defines the Trakt export and import record shapes.
package trakt

// Media types accepted by the import endpoint.
const (
	TypeMovie   = "movie"
	TypeShow    = "show"
	TypeEpisode = "episode"
)

// IDs is the external identifier block attached to a movie, show, or episode.
// IMDB IDs are strings ("tt0068646"); the other schemes are numeric.
type IDs struct {
	Trakt int    `json:"trakt,omitempty"`
	Slug  string `json:"slug,omitempty"`
	IMDB  string `json:"imdb,omitempty"`
	TMDB  int    `json:"tmdb,omitempty"`
	TVDB  int    `json:"tvdb,omitempty"`
}

// Movie is a movie object as it appears in export files.
type Movie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

// Show is a TV show object as it appears in export files.
type Show struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

// Episode is an episode object as it appears in history exports.
type Episode struct {
	Season int    `json:"season"`
	Number int    `json:"number"`
	Title  string `json:"title,omitempty"`
	IDs    IDs    `json:"ids"`
}

// HistoryItem is one entry of a history export. Exactly one of Movie,
// Show, or Episode is populated depending on Type.
type HistoryItem struct {
	ID            int64    `json:"id,omitempty"`
	WatchedAt     string   `json:"watched_at,omitempty"`
	Action        string   `json:"action,omitempty"`
	Type          string   `json:"type,omitempty"`
	Movie         *Movie   `json:"movie,omitempty"`
	Show          *Show    `json:"show,omitempty"`
	Episode       *Episode `json:"episode,omitempty"`
	Rating        int      `json:"rating,omitempty"`
	RatedAt       string   `json:"rated_at,omitempty"`
	WatchlistedAt string   `json:"watchlisted_at,omitempty"`
}

// WatchedMovie is one entry of a watched-movies export.
type WatchedMovie struct {
	Plays         int    `json:"plays,omitempty"`
	LastWatchedAt string `json:"last_watched_at,omitempty"`
	Movie         Movie  `json:"movie"`
	Rating        int    `json:"rating,omitempty"`
	RatedAt       string `json:"rated_at,omitempty"`
}

// WatchedShow is one entry of a watched-shows export. Seasons carry
// aggregated play counts, not timestamps.
type WatchedShow struct {
	Plays         int             `json:"plays,omitempty"`
	LastWatchedAt string          `json:"last_watched_at,omitempty"`
	Show          Show            `json:"show"`
	Seasons       []WatchedSeason `json:"seasons,omitempty"`
}

// WatchedSeason aggregates per-episode play counts within a show.
type WatchedSeason struct {
	Number   int                  `json:"number"`
	Episodes []WatchedSeasonEntry `json:"episodes,omitempty"`
}

// WatchedSeasonEntry is the per-episode play count inside a watched season.
type WatchedSeasonEntry struct {
	Number int `json:"number"`
	Plays  int `json:"plays"`
}

// ImportEntry is the canonical record written to the import file. Exactly
// one of the four identifier fields is set; the ID value keeps the JSON
// type it had in the export (string for IMDB, number for the rest).
type ImportEntry struct {
	IMDBID        any    `json:"imdb_id,omitempty"`
	TMDBID        any    `json:"tmdb_id,omitempty"`
	TVDBID        any    `json:"tvdb_id,omitempty"`
	TraktID       any    `json:"trakt_id,omitempty"`
	Type          string `json:"type"`
	Season        *int   `json:"season,omitempty"`
	Episode       *int   `json:"episode,omitempty"`
	WatchedAt     string `json:"watched_at,omitempty"`
	WatchlistedAt string `json:"watchlisted_at,omitempty"`
	Rating        int    `json:"rating,omitempty"`
	RatedAt       string `json:"rated_at,omitempty"`
}

// SetID assigns the identifier field named by the import schema
// (imdb_id, tmdb_id, tvdb_id, or trakt_id). Unknown fields are ignored.
func (e *ImportEntry) SetID(field string, value any) {
	switch field {
	case "imdb_id":
		e.IMDBID = value
	case "tmdb_id":
		e.TMDBID = value
	case "tvdb_id":
		e.TVDBID = value
	case "trakt_id":
		e.TraktID = value
	}
}

// IDField returns the identifier field and value set on the entry, or
// ("", nil) if none is set.
func (e *ImportEntry) IDField() (string, any) {
	switch {
	case e.IMDBID != nil:
		return "imdb_id", e.IMDBID
	case e.TMDBID != nil:
		return "tmdb_id", e.TMDBID
	case e.TVDBID != nil:
		return "tvdb_id", e.TVDBID
	case e.TraktID != nil:
		return "trakt_id", e.TraktID
	}
	return "", nil
}
