// Package validate checks transcript uploads and recipient lists before any
// external service is called.
package validate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingFile is returned when no transcript file was attached.
	ErrMissingFile = errors.New("no file uploaded")

	// ErrUnsupportedType is returned for anything that is not plain text or markdown.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrPayloadTooLarge is returned when an upload exceeds MaxUploadBytes.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// InvalidRecipientsError lists every recipient entry that failed the address check,
// in the order they were given.
type InvalidRecipientsError struct {
	Entries []string
}

func (e *InvalidRecipientsError) Error() string {
	return fmt.Sprintf("invalid email addresses: %s", strings.Join(e.Entries, ", "))
}
