package convert

import (
	"encoding/json"
	"os"

	"github.com/traktport/traktport/pkg/trakt"
)

// outputNames maps each export shape to its conventional import filename.
var outputNames = map[Format]string{
	FormatHistory:       "history_import.json",
	FormatWatchedMovies: "movies_import.json",
	FormatWatchedShows:  "shows_import.json",
}

// DefaultOutputName returns the conventional import filename for a format.
func DefaultOutputName(f Format) string {
	if name, ok := outputNames[f]; ok {
		return name
	}
	return "import.json"
}

// Marshal serializes import entries as a JSON array, preserving order.
// The import feature may use array order as a duplicate tie-break, so the
// sequence is written exactly as produced. A nil slice serializes as [].
func Marshal(entries []*trakt.ImportEntry, pretty bool) ([]byte, error) {
	if entries == nil {
		entries = []*trakt.ImportEntry{}
	}
	if pretty {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteFile serializes entries and writes them to path, creating or
// overwriting the file.
func WriteFile(path string, entries []*trakt.ImportEntry, pretty bool) error {
	data, err := Marshal(entries, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
