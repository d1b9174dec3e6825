package cli

import (
	"errors"
	"fmt"

	"github.com/traktport/traktport/pkg/convert"
)

// userError maps pipeline failures to the documented troubleshooting
// diagnostics. The prefix of each message is stable; scripts match on it.
func userError(err error) error {
	var ce *convert.ConvertError
	if !errors.As(err, &ce) {
		return err
	}
	switch ce.Kind {
	case convert.KindFileNotFound:
		return fmt.Errorf("File not found: %s", ce.Path)
	case convert.KindInvalidJSON:
		if ce.Cause != nil {
			return fmt.Errorf("Invalid JSON: %v", ce.Cause)
		}
		return errors.New("Invalid JSON")
	case convert.KindUnsupportedFormat:
		return errors.New("No valid items found")
	default:
		return err
	}
}
