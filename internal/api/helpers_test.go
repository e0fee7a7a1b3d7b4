package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/meeting-notes/backend/internal/testutil"
)

var testOrigins = []string{"http://localhost:3000"}

type testServer struct {
	e          *echo.Echo
	summarizer *testutil.MockSummarizer
	mailer     *testutil.MockMailer
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		summarizer: testutil.NewMockSummarizer("- Shipped v2"),
		mailer:     testutil.NewMockMailer(),
	}
	ts.e = NewServer(&Dependencies{
		Summarizer:     ts.summarizer,
		Mailer:         ts.mailer,
		AllowedOrigins: testOrigins,
		Logger:         discardLogger(),
	})
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) postJSON(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	switch p := payload.(type) {
	case string:
		body = []byte(p)
	default:
		var err error
		body, err = json.Marshal(p)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return ts.do(req)
}

// multipartUpload builds a request with one file part under field.
func multipartUpload(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+strings.ReplaceAll(filename, `"`, `\"`)+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope, 1, "error envelope must only carry an error field: %s", rec.Body.String())
	msg, ok := envelope["error"].(string)
	require.True(t, ok)
	return msg
}
