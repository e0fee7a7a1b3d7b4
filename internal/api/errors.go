// errors.go - Structured error handling for API responses
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/meeting-notes/backend/internal/mailer"
	"github.com/meeting-notes/backend/internal/summarizer"
	"github.com/meeting-notes/backend/internal/validate"
)

// Messages returned to callers. Details of provider and relay failures stay in the logs.
const (
	MsgRouteNotFound           = "Route not found"
	MsgFileTooLarge            = "File too large. Maximum size is 5MB."
	MsgNoFile                  = "No file uploaded"
	MsgUnsupportedType         = "Invalid file type. Only .txt and .md files are allowed."
	MsgContentPromptRequired   = "Content and prompt are required"
	MsgRecipientsRequired      = "Recipients and summary are required"
	MsgInvalidJSON             = "Invalid JSON body"
	MsgSummaryFailed           = "Failed to generate summary"
	MsgEmptySummary            = "No summary was generated"
	MsgEmailFailed             = "Failed to send email"
	MsgOriginNotAllowed        = "Not allowed by CORS"
	MsgInternal                = "Something went wrong!"
	invalidRecipientsMsgPrefix = "Invalid email addresses: "
)

// APIError is the error envelope. Only Message reaches the response body.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"-"`
	Message string `json:"error"`
	Details string `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	return newAPIError(http.StatusBadRequest, "BAD_REQUEST", message, cause)
}

// NewForbiddenError creates a 403 Forbidden error
func NewForbiddenError(message string) *APIError {
	return newAPIError(http.StatusForbidden, "FORBIDDEN", message, nil)
}

// NewNotFoundError creates the 404 returned for unmatched routes
func NewNotFoundError() *APIError {
	return newAPIError(http.StatusNotFound, "NOT_FOUND", MsgRouteNotFound, nil)
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	return newAPIError(http.StatusInternalServerError, "INTERNAL_ERROR", message, cause)
}

func newAPIError(status int, code, message string, cause error) *APIError {
	err := &APIError{
		Status:  status,
		Code:    code,
		Message: message,
	}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// toAPIError maps any error a handler or middleware returned onto the envelope.
func toAPIError(err error) *APIError {
	var (
		apiErr      *APIError
		invalidErr  *validate.InvalidRecipientsError
		providerErr *summarizer.ProviderError
		relayErr    *mailer.RelayError
		httpErr     *echo.HTTPError
	)

	switch {
	case errors.As(err, &apiErr):
		return apiErr

	case errors.Is(err, validate.ErrPayloadTooLarge):
		return newAPIError(http.StatusBadRequest, "PAYLOAD_TOO_LARGE", MsgFileTooLarge, err)
	case errors.Is(err, validate.ErrMissingFile):
		return newAPIError(http.StatusBadRequest, "VALIDATION_ERROR", MsgNoFile, err)
	case errors.Is(err, validate.ErrUnsupportedType):
		return newAPIError(http.StatusBadRequest, "UNSUPPORTED_MEDIA", MsgUnsupportedType, err)
	case errors.As(err, &invalidErr):
		return newAPIError(http.StatusBadRequest, "VALIDATION_ERROR",
			invalidRecipientsMsgPrefix+strings.Join(invalidErr.Entries, ", "), err)
	case errors.Is(err, mailer.ErrNoRecipients):
		return newAPIError(http.StatusBadRequest, "VALIDATION_ERROR", MsgRecipientsRequired, err)
	case errors.Is(err, summarizer.ErrEmptyContent), errors.Is(err, summarizer.ErrEmptyInstruction):
		return newAPIError(http.StatusBadRequest, "VALIDATION_ERROR", MsgContentPromptRequired, err)

	case errors.As(err, &providerErr):
		return newAPIError(http.StatusInternalServerError, "PROVIDER_ERROR", MsgSummaryFailed, err)
	case errors.Is(err, summarizer.ErrEmptyCompletion):
		return newAPIError(http.StatusInternalServerError, "PROVIDER_ERROR", MsgEmptySummary, err)
	case errors.As(err, &relayErr):
		return newAPIError(http.StatusInternalServerError, "RELAY_ERROR", MsgEmailFailed, err)

	case errors.As(err, &httpErr):
		return fromHTTPError(httpErr)
	}

	return NewInternalError(MsgInternal, err)
}

func fromHTTPError(e *echo.HTTPError) *APIError {
	switch e.Code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return NewNotFoundError()
	case http.StatusRequestEntityTooLarge:
		return newAPIError(http.StatusBadRequest, "PAYLOAD_TOO_LARGE", MsgFileTooLarge, e)
	}

	if e.Code >= http.StatusInternalServerError {
		return NewInternalError(MsgInternal, e)
	}
	return newAPIError(e.Code, "HTTP_ERROR", fmt.Sprintf("%v", e.Message), e)
}

// NewErrorHandler returns the catch-all error handler.
// Usage: e.HTTPErrorHandler = api.NewErrorHandler(log)
func NewErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		apiErr := toAPIError(err)

		ctx := c.Request().Context()
		attrs := []any{
			"status", apiErr.Status,
			"code", apiErr.Code,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"requestId", c.Response().Header().Get(echo.HeaderXRequestID),
		}
		if apiErr.Details != "" {
			attrs = append(attrs, "error", apiErr.Details)
		}
		if apiErr.Status >= http.StatusInternalServerError {
			log.ErrorContext(ctx, "Request failed", attrs...)
		} else {
			log.DebugContext(ctx, "Request rejected", attrs...)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(apiErr.Status)
			return
		}
		_ = c.JSON(apiErr.Status, apiErr)
	}
}
