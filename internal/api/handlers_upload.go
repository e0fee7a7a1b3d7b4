// handlers_upload.go - Transcript upload handler
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meeting-notes/backend/internal/models"
	"github.com/meeting-notes/backend/internal/validate"
)

const (
	// UploadField is the multipart field carrying the transcript.
	UploadField = "transcript"

	// maxUploadRequestBytes leaves room for multipart framing around a
	// maximum-size transcript.
	maxUploadRequestBytes = validate.MaxUploadBytes + 1<<20
)

// UploadHandlerImpl implements the UploadHandler interface
type UploadHandlerImpl struct {
	log *slog.Logger
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(log *slog.Logger) UploadHandler {
	return &UploadHandlerImpl{log: log}
}

type uploadResponse struct {
	Success bool `json:"success"`
	models.UploadedDocument
}

// HandleUpload reads a text transcript from multipart/form-data and echoes
// it back with a preview. Nothing is stored.
func (h *UploadHandlerImpl) HandleUpload(c echo.Context) error {
	req := c.Request()
	if req.ContentLength > maxUploadRequestBytes {
		return validate.ErrPayloadTooLarge
	}
	req.Body = http.MaxBytesReader(c.Response(), req.Body, maxUploadRequestBytes)

	file, err := c.FormFile(UploadField)
	if err != nil {
		return uploadFormError(err)
	}

	src, err := file.Open()
	if err != nil {
		return NewInternalError(MsgInternal, fmt.Errorf("open uploaded file: %w", err))
	}
	defer src.Close()

	doc, err := validate.Upload(file.Filename, file.Header.Get(echo.HeaderContentType), file.Size, src)
	if err != nil {
		return err
	}

	h.log.InfoContext(req.Context(), "Transcript is uploaded",
		"filename", doc.Filename,
		"sizeBytes", file.Size)

	return c.JSON(http.StatusOK, uploadResponse{
		Success:          true,
		UploadedDocument: doc,
	})
}

func uploadFormError(err error) error {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return validate.ErrPayloadTooLarge
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return validate.ErrMissingFile
	}
	return fmt.Errorf("parse upload form: %w", err)
}
