package validate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAllowedType(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        bool
	}{
		{name: "txt extension", filename: "notes.txt", contentType: "application/octet-stream", want: true},
		{name: "md extension", filename: "notes.md", contentType: "", want: true},
		{name: "uppercase extension", filename: "NOTES.TXT", contentType: "", want: true},
		{name: "text/plain with charset", filename: "notes", contentType: "text/plain; charset=utf-8", want: true},
		{name: "pdf", filename: "notes.pdf", contentType: "application/pdf", want: false},
		{name: "html", filename: "notes.html", contentType: "text/html", want: false},
		{name: "no extension no type", filename: "notes", contentType: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedType(tt.filename, tt.contentType))
		})
	}
}

func TestUpload(t *testing.T) {
	t.Run("short transcript keeps full preview", func(t *testing.T) {
		content := "Q1 review. Decided to ship v2."
		doc, err := Upload("notes.txt", "text/plain", int64(len(content)), strings.NewReader(content))
		require.NoError(t, err)

		assert.Equal(t, "notes.txt", doc.Filename)
		assert.Equal(t, content, doc.Content)
		assert.Equal(t, content, doc.Preview)
	})

	t.Run("long transcript gets marker", func(t *testing.T) {
		content := strings.Repeat("a", 501)
		doc, err := Upload("notes.md", "", int64(len(content)), strings.NewReader(content))
		require.NoError(t, err)

		assert.Equal(t, strings.Repeat("a", 500)+PreviewMarker, doc.Preview)
		assert.Equal(t, content, doc.Content)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Upload("", "", 0, nil)
		assert.ErrorIs(t, err, ErrMissingFile)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := Upload("slides.pdf", "application/pdf", 4, strings.NewReader("%PDF"))
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("declared size too large", func(t *testing.T) {
		_, err := Upload("big.txt", "text/plain", 6*1024*1024, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrPayloadTooLarge)
	})

	t.Run("oversized file of any type is too large", func(t *testing.T) {
		_, err := Upload("slides.pdf", "application/pdf", MaxUploadBytes+512*1024, strings.NewReader("%PDF"))
		assert.ErrorIs(t, err, ErrPayloadTooLarge)
	})

	t.Run("understated size still capped", func(t *testing.T) {
		data := bytes.Repeat([]byte("x"), int(MaxUploadBytes)+1)
		_, err := Upload("big.txt", "text/plain", 10, bytes.NewReader(data))
		assert.ErrorIs(t, err, ErrPayloadTooLarge)
	})

	t.Run("exactly at the limit", func(t *testing.T) {
		data := bytes.Repeat([]byte("x"), int(MaxUploadBytes))
		doc, err := Upload("edge.txt", "text/plain", MaxUploadBytes, bytes.NewReader(data))
		require.NoError(t, err)
		assert.Len(t, doc.Content, int(MaxUploadBytes))
	})

	t.Run("invalid utf8 is replaced", func(t *testing.T) {
		doc, err := Upload("notes.txt", "text/plain", 3, bytes.NewReader([]byte{'a', 0xff, 'b'}))
		require.NoError(t, err)
		assert.Equal(t, "a\uFFFDb", doc.Content)
	})
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: ""},
		{name: "exactly 500", content: strings.Repeat("b", 500), want: strings.Repeat("b", 500)},
		{name: "multibyte counted as characters", content: strings.Repeat("é", 501), want: strings.Repeat("é", 500) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preview(tt.content))
		})
	}
}
