package convert

import "errors"

// Kind classifies a conversion failure. Every failure is terminal for the
// run; nothing is retried or recovered into partial output.
type Kind string

// Failure kinds.
const (
	KindFileNotFound      Kind = "file-not-found"
	KindInvalidJSON       Kind = "invalid-json"
	KindUnsupportedFormat Kind = "unsupported-format"
)

// ConvertError represents an error during conversion.
type ConvertError struct {
	Kind    Kind
	Format  Format
	Path    string
	Message string
	Cause   error
}

func (e *ConvertError) Error() string {
	msg := e.Message
	if e.Format != FormatUnknown {
		msg = string(e.Format) + ": " + msg
	}
	if e.Path != "" {
		msg = msg + ": " + e.Path
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConvertError) Unwrap() error {
	return e.Cause
}

func isKind(err error, kind Kind) bool {
	var ce *ConvertError
	return errors.As(err, &ce) && ce.Kind == kind
}

// IsFileNotFound reports whether err is a missing or unreadable input file.
func IsFileNotFound(err error) bool { return isKind(err, KindFileNotFound) }

// IsInvalidJSON reports whether err is a malformed JSON document.
func IsInvalidJSON(err error) bool { return isKind(err, KindInvalidJSON) }

// IsUnsupportedFormat reports whether err means the document matched no
// known export shape, or yielded no convertible records.
func IsUnsupportedFormat(err error) bool { return isKind(err, KindUnsupportedFormat) }
