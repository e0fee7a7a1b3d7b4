package validate

import (
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/meeting-notes/backend/internal/models"
)

const (
	// MaxUploadBytes is the largest transcript accepted (5 MiB).
	MaxUploadBytes int64 = 5 * 1024 * 1024

	// PreviewLength is the number of characters kept in a preview.
	PreviewLength = 500

	// PreviewMarker is appended to a preview that was cut short.
	PreviewMarker = "..."
)

var allowedExtensions = map[string]struct{}{
	".txt": {},
	".md":  {},
}

// IsAllowedType reports whether a file is accepted as a transcript: a text/plain
// media type or a .txt/.md filename is enough.
func IsAllowedType(filename, contentType string) bool {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil && strings.EqualFold(mediaType, "text/plain") {
			return true
		}
	}

	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Upload validates a transcript and decodes it into an UploadedDocument.
// An oversized file is rejected whatever its type. size is the declared size;
// the reader is still capped at MaxUploadBytes so an understated size cannot
// slip through.
func Upload(filename, contentType string, size int64, r io.Reader) (models.UploadedDocument, error) {
	if r == nil || filename == "" {
		return models.UploadedDocument{}, ErrMissingFile
	}
	if size > MaxUploadBytes {
		return models.UploadedDocument{}, ErrPayloadTooLarge
	}
	if !IsAllowedType(filename, contentType) {
		return models.UploadedDocument{}, ErrUnsupportedType
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return models.UploadedDocument{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > MaxUploadBytes {
		return models.UploadedDocument{}, ErrPayloadTooLarge
	}

	content := string(data)
	if !utf8.ValidString(content) {
		content = strings.ToValidUTF8(content, "\uFFFD")
	}

	return models.UploadedDocument{
		Filename: filename,
		Content:  content,
		Preview:  Preview(content),
	}, nil
}

// Preview returns the first PreviewLength characters of content, with
// PreviewMarker appended only when something was cut.
func Preview(content string) string {
	if utf8.RuneCountInString(content) <= PreviewLength {
		return content
	}

	runes := []rune(content)
	return string(runes[:PreviewLength]) + PreviewMarker
}
