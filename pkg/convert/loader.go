package convert

import (
	"os"

	"github.com/ohler55/ojg/oj"
)

// Parse parses raw export file content into a sequence of records.
// The top-level value must be a JSON array; anything else matches no
// known export shape.
func Parse(data []byte) ([]any, error) {
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, &ConvertError{
			Kind:    KindInvalidJSON,
			Message: "content is not well-formed JSON",
			Cause:   err,
		}
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, &ConvertError{
			Kind:    KindUnsupportedFormat,
			Message: "expected a JSON array of export records",
		}
	}
	return items, nil
}

// LoadFile reads and parses an export file. A missing or unreadable path
// is a file-not-found failure; malformed content is an invalid-JSON
// failure. There is no partial-parse recovery.
func LoadFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConvertError{
			Kind:    KindFileNotFound,
			Path:    path,
			Message: "cannot read input file",
			Cause:   err,
		}
	}

	items, err := Parse(data)
	if err != nil {
		if ce, ok := err.(*ConvertError); ok {
			ce.Path = path
		}
		return nil, err
	}
	return items, nil
}
