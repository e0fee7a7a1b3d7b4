// handlers_upload_test.go - Tests for the upload handler
package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeting-notes/backend/internal/validate"
)

func TestUploadHandler_HandleUpload(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
		wantErr     error
	}{
		{
			name:        "plain text",
			filename:    "notes.txt",
			contentType: "text/plain",
			data:        []byte("hello world"),
		},
		{
			name:        "markdown with generic type",
			filename:    "notes.md",
			contentType: "application/octet-stream",
			data:        []byte("# Standup"),
		},
		{
			name:        "text/plain without extension",
			filename:    "transcript",
			contentType: "text/plain; charset=utf-8",
			data:        []byte("hello"),
		},
		{
			name:        "pdf rejected",
			filename:    "notes.pdf",
			contentType: "application/pdf",
			data:        []byte("%PDF-1.7"),
			wantErr:     validate.ErrUnsupportedType,
		},
		{
			name:        "docx rejected",
			filename:    "notes.docx",
			contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			data:        []byte("PK"),
			wantErr:     validate.ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUploadHandler(discardLogger())

			e := echo.New()
			req := multipartUpload(t, UploadField, tt.filename, tt.contentType, tt.data)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.HandleUpload(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"filename":"`+tt.filename+`"`)
		})
	}
}

func TestUploadHandler_MissingFile(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{
			name: "wrong field name",
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, "file", "notes.txt", "text/plain", []byte("x"))
			},
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(`{}`))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				return req
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUploadHandler(discardLogger())
			c := echo.New().NewContext(tt.req(t), httptest.NewRecorder())

			err := handler.HandleUpload(c)
			assert.ErrorIs(t, err, validate.ErrMissingFile)
		})
	}
}

func TestUploadHandler_TooLarge(t *testing.T) {
	handler := NewUploadHandler(discardLogger())

	data := bytes.Repeat([]byte("a"), int(validate.MaxUploadBytes)+1)
	req := multipartUpload(t, UploadField, "big.txt", "text/plain", data)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	err := handler.HandleUpload(c)
	assert.True(t, errors.Is(err, validate.ErrPayloadTooLarge), "got %v", err)
}

func TestUpload_Endpoint(t *testing.T) {
	t.Run("short transcript echoed with full preview", func(t *testing.T) {
		ts := newTestServer(t)
		content := "Q1 review. Decided to ship v2."

		rec := ts.do(multipartUpload(t, UploadField, "notes.txt", "text/plain", []byte(content)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"success": true,
			"filename": "notes.txt",
			"content": "Q1 review. Decided to ship v2.",
			"preview": "Q1 review. Decided to ship v2."
		}`, rec.Body.String())
	})

	t.Run("long transcript preview is truncated", func(t *testing.T) {
		ts := newTestServer(t)
		content := strings.Repeat("x", 750)

		rec := ts.do(multipartUpload(t, UploadField, "long.md", "", []byte(content)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"preview":"`+strings.Repeat("x", 500)+`..."`)
	})

	t.Run("6 MiB transcript rejected", func(t *testing.T) {
		ts := newTestServer(t)
		data := bytes.Repeat([]byte("a"), 6*1024*1024)

		rec := ts.do(multipartUpload(t, UploadField, "big.txt", "text/plain", data))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "File too large. Maximum size is 5MB.", decodeError(t, rec))
	})

	t.Run("oversized pdf reports size before type", func(t *testing.T) {
		ts := newTestServer(t)
		data := bytes.Repeat([]byte("a"), int(validate.MaxUploadBytes)+512*1024)

		rec := ts.do(multipartUpload(t, UploadField, "big.pdf", "application/pdf", data))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, MsgFileTooLarge, decodeError(t, rec))
	})

	t.Run("unsupported type", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(multipartUpload(t, UploadField, "slides.pptx", "application/octet-stream", []byte("PK")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, MsgUnsupportedType, decodeError(t, rec))
	})

	t.Run("missing file", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(multipartUpload(t, "other", "notes.txt", "text/plain", []byte("x")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, MsgNoFile, decodeError(t, rec))
	})
}
