// Package convert implements the Trakt export-to-import pipeline:
// load, detect the export shape, normalize each record, and write the
// resulting import file.
package convert

import (
	"log/slog"

	"github.com/ohler55/ojg/jp"

	"github.com/traktport/traktport/pkg/logging"
	"github.com/traktport/traktport/pkg/trakt"
)

// Additional probes used only by the normalizers.
var (
	probeEpisodeSeason = jp.MustParseString("$.episode.season")
	probeEpisodeNumber = jp.MustParseString("$.episode.number")
	probeLastWatchedAt = jp.MustParseString("$.last_watched_at")
	probeRating        = jp.MustParseString("$.rating")
	probeRatedAt       = jp.MustParseString("$.rated_at")
	probeWatchlistedAt = jp.MustParseString("$.watchlisted_at")
)

// Options configures a conversion run.
type Options struct {
	// Format forces the export shape instead of structural detection.
	Format Format

	// Filename is the input file name, used only as a detection hint
	// for empty arrays.
	Filename string

	// Logger receives debug output for detection and skipped records.
	Logger *slog.Logger
}

// Result holds the outcome of a conversion run.
type Result struct {
	Format  Format
	Entries []*trakt.ImportEntry
	Skipped int
}

// normalizer maps one export record to zero-or-one import entry.
// A nil return means the record is skipped (no resolvable identifier).
type normalizer func(item map[string]any) *trakt.ImportEntry

var normalizers = map[Format]normalizer{
	FormatHistory:       normalizeHistory,
	FormatWatchedMovies: normalizeWatchedMovie,
	FormatWatchedShows:  normalizeWatchedShow,
}

// Convert normalizes a parsed export document into import entries,
// preserving input order. A document that matches no known shape, or
// whose records all lack usable identifiers, is an unsupported-format
// failure rather than a silent empty success.
func Convert(items []any, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	format := opts.Format
	if format == FormatUnknown {
		format = DetectFormat(items, opts.Filename)
	}
	if format == FormatUnknown {
		return nil, &ConvertError{
			Kind:    KindUnsupportedFormat,
			Message: "no valid items found",
		}
	}
	logger.Debug("detected export format", "format", format, "items", len(items))

	normalize := normalizers[format]
	result := &Result{
		Format:  format,
		Entries: make([]*trakt.ImportEntry, 0, len(items)),
	}

	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			result.Skipped++
			logger.Debug("skipping non-object record", "index", i)
			continue
		}
		entry := normalize(m)
		if entry == nil {
			result.Skipped++
			logger.Debug("skipping record without usable identifier", "index", i)
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	if len(items) > 0 && len(result.Entries) == 0 {
		return nil, &ConvertError{
			Kind:    KindUnsupportedFormat,
			Format:  format,
			Message: "no valid items found",
		}
	}
	return result, nil
}

// nestedIDPaths is the search order for a history entry's identifier
// block. The most specific media object wins.
var nestedIDPaths = []struct {
	expr  jp.Expr
	media string
}{
	{probeEpisodeIDs, trakt.TypeEpisode},
	{probeMovieIDs, trakt.TypeMovie},
	{probeShowIDs, trakt.TypeShow},
	{probeSeasonIDs, trakt.TypeShow},
}

// normalizeHistory converts one history entry. The media type comes from
// the record's own type field, falling back to whichever nested media
// object carries the identifier block.
func normalizeHistory(item map[string]any) *trakt.ImportEntry {
	mediaType, _ := probeType.First(item).(string)

	var ids map[string]any
	for _, p := range nestedIDPaths {
		if m := mapAt(p.expr, item); m != nil {
			ids = m
			if mediaType == "" {
				mediaType = p.media
			}
			break
		}
	}
	if ids == nil {
		// Some history exports flatten the ids block onto the entry.
		ids = mapAt(probeIDs, item)
	}

	field, value, ok := ResolveID(ids)
	if !ok || mediaType == "" {
		return nil
	}

	entry := &trakt.ImportEntry{Type: mediaType}
	entry.SetID(field, value)
	entry.WatchedAt = strAt(probeWatchedAt, item)
	entry.WatchlistedAt = strAt(probeWatchlistedAt, item)
	if rating, ok := intAt(probeRating, item); ok && rating != 0 {
		entry.Rating = rating
		entry.RatedAt = strAt(probeRatedAt, item)
	}
	if mediaType == trakt.TypeEpisode {
		if season, ok := intAt(probeEpisodeSeason, item); ok {
			entry.Season = &season
		}
		if number, ok := intAt(probeEpisodeNumber, item); ok {
			entry.Episode = &number
		}
	}
	return entry
}

// normalizeWatchedMovie converts one watched-movies entry, nested or flat.
func normalizeWatchedMovie(item map[string]any) *trakt.ImportEntry {
	return normalizeWatched(item, probeMovieIDs, trakt.TypeMovie)
}

// normalizeWatchedShow converts one watched-shows entry. Shows whose export
// carries only per-season play counts have no usable timestamp and omit
// watched_at rather than fabricating one.
func normalizeWatchedShow(item map[string]any) *trakt.ImportEntry {
	return normalizeWatched(item, probeShowIDs, trakt.TypeShow)
}

func normalizeWatched(item map[string]any, nested jp.Expr, mediaType string) *trakt.ImportEntry {
	ids := mapAt(nested, item)
	if ids == nil {
		ids = mapAt(probeIDs, item)
	}

	field, value, ok := ResolveID(ids)
	if !ok {
		return nil
	}

	entry := &trakt.ImportEntry{Type: mediaType}
	entry.SetID(field, value)
	if watched := strAt(probeLastWatchedAt, item); watched != "" {
		entry.WatchedAt = watched
	}
	entry.WatchlistedAt = strAt(probeWatchlistedAt, item)
	if rating, ok := intAt(probeRating, item); ok && rating != 0 {
		entry.Rating = rating
		entry.RatedAt = strAt(probeRatedAt, item)
	}
	return entry
}

// mapAt returns the object the probe resolves to, or nil.
func mapAt(x jp.Expr, item any) map[string]any {
	m, _ := x.First(item).(map[string]any)
	return m
}

// strAt returns the string the probe resolves to, or "".
func strAt(x jp.Expr, item any) string {
	s, _ := x.First(item).(string)
	return s
}

// intAt returns the integer the probe resolves to. JSON numbers arrive as
// int64 from the parser; int and float64 cover test-built documents.
func intAt(x jp.Expr, item any) (int, bool) {
	switch v := x.First(item).(type) {
	case int64:
		return int(v), true
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
