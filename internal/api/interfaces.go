// interfaces.go - Handler and dependency interfaces
package api

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/meeting-notes/backend/internal/models"
)

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// UploadHandler handles transcript uploads
type UploadHandler interface {
	HandleUpload(c echo.Context) error
}

// SummaryHandler handles summary generation
type SummaryHandler interface {
	HandleGenerateSummary(c echo.Context) error
}

// EmailHandler handles summary distribution
type EmailHandler interface {
	HandleSendEmail(c echo.Context) error
}

// Summarizer is the completion client used by SummaryHandler.
// This allows mocking in tests
type Summarizer interface {
	Summarize(ctx context.Context, content, instruction string) (models.SummaryResult, error)
}

// Mailer is the mail sender used by EmailHandler. Send is all-or-nothing:
// one relay call covers every recipient.
type Mailer interface {
	Send(ctx context.Context, recipients []string, summary, subject string) (models.DeliveryReceipt, error)
}
