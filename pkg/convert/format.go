package convert

import (
	"path/filepath"
	"strings"

	"github.com/ohler55/ojg/jp"
)

// Format represents a recognized Trakt export shape.
type Format string

// Supported export formats.
const (
	FormatUnknown       Format = ""
	FormatHistory       Format = "history"        // per-watch history entries
	FormatWatchedMovies Format = "watched-movies" // aggregated watched movies
	FormatWatchedShows  Format = "watched-shows"  // aggregated watched shows
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known export shape.
func (f Format) IsValid() bool {
	switch f {
	case FormatHistory, FormatWatchedMovies, FormatWatchedShows:
		return true
	default:
		return false
	}
}

// ParseFormat parses a format string into a Format type.
// Returns FormatUnknown for unrecognized format strings.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "history":
		return FormatHistory
	case "watched-movies", "movies":
		return FormatWatchedMovies
	case "watched-shows", "shows":
		return FormatWatchedShows
	default:
		return FormatUnknown
	}
}

// AllFormats returns a list of all supported export formats.
func AllFormats() []Format {
	return []Format{FormatHistory, FormatWatchedMovies, FormatWatchedShows}
}

// JSONPath probes used by the detection rules and the normalizers.
var (
	probeType      = jp.MustParseString("$.type")
	probeAction    = jp.MustParseString("$.action")
	probeWatchedAt = jp.MustParseString("$.watched_at")

	probeMovieIDs   = jp.MustParseString("$.movie.ids")
	probeShowIDs    = jp.MustParseString("$.show.ids")
	probeEpisodeIDs = jp.MustParseString("$.episode.ids")
	probeSeasonIDs  = jp.MustParseString("$.season.ids")

	probeTitle   = jp.MustParseString("$.title")
	probeYear    = jp.MustParseString("$.year")
	probeIDs     = jp.MustParseString("$.ids")
	probeSeasons = jp.MustParseString("$.seasons")
)

// detectRule classifies a single export record. Rules are applied in
// order and the first match wins; the ordering is part of the format
// contract and mirrors the documented detection precedence.
type detectRule struct {
	format Format
	match  func(item map[string]any) bool
}

var detectRules = []detectRule{
	{FormatHistory, isHistoryShaped},
	{FormatWatchedMovies, isMovieShaped},
	{FormatWatchedShows, isShowShaped},
}

// isHistoryShaped matches per-watch entries: a type or action marker, or a
// direct watch timestamp next to the nested media object.
func isHistoryShaped(item map[string]any) bool {
	return present(probeType, item) || present(probeAction, item) || present(probeWatchedAt, item)
}

// isMovieShaped matches aggregated watched-movie entries, either nested
// under a movie object or flattened (title + year + ids at the top level).
func isMovieShaped(item map[string]any) bool {
	if present(probeMovieIDs, item) {
		return true
	}
	return present(probeTitle, item) && present(probeYear, item) && present(probeIDs, item) &&
		!present(probeSeasons, item) && !present(probeShowIDs, item)
}

// isShowShaped matches aggregated watched-show entries, either nested under
// a show object or flattened with per-season watch counts.
func isShowShaped(item map[string]any) bool {
	if present(probeShowIDs, item) {
		return true
	}
	return present(probeTitle, item) && present(probeYear, item) && present(probeIDs, item) &&
		present(probeSeasons, item)
}

// present reports whether the probe resolves to a non-nil value on item.
func present(x jp.Expr, item any) bool {
	for _, v := range x.Get(item) {
		if v != nil {
			return true
		}
	}
	return false
}

// classify returns the format of a single record, or FormatUnknown.
func classify(item map[string]any) Format {
	for _, rule := range detectRules {
		if rule.match(item) {
			return rule.format
		}
	}
	return FormatUnknown
}

// DetectFormat classifies a parsed export document by structure alone.
// Every element must classify to the same shape; a file mixing movie- and
// show-shaped records is unknown rather than merged.
//
// An empty array carries no structure to inspect, so the filename stem is
// consulted as a fallback hint (watched-movies.json, history-1.json, ...).
// The hint is never used when records are present.
func DetectFormat(items []any, filename string) Format {
	if len(items) == 0 {
		return formatFromFilename(filename)
	}

	detected := FormatUnknown
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return FormatUnknown
		}
		f := classify(m)
		if f == FormatUnknown {
			return FormatUnknown
		}
		if detected == FormatUnknown {
			detected = f
			continue
		}
		if f != detected {
			// Mixed shapes in one file.
			return FormatUnknown
		}
	}
	return detected
}

// formatFromFilename maps conventional export filenames to a format.
func formatFromFilename(filename string) Format {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stem = strings.ToLower(stem)
	switch {
	case strings.HasPrefix(stem, "history"):
		return FormatHistory
	case strings.HasPrefix(stem, "watched-movies"):
		return FormatWatchedMovies
	case strings.HasPrefix(stem, "watched-shows"):
		return FormatWatchedShows
	default:
		return FormatUnknown
	}
}
