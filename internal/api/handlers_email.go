// handlers_email.go - Summary distribution handler
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meeting-notes/backend/internal/models"
	"github.com/meeting-notes/backend/internal/validate"
)

// EmailHandlerImpl implements the EmailHandler interface
type EmailHandlerImpl struct {
	mailer Mailer
	log    *slog.Logger
}

// NewEmailHandler creates a new email handler instance
func NewEmailHandler(m Mailer, log *slog.Logger) EmailHandler {
	return &EmailHandlerImpl{mailer: m, log: log}
}

type emailResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
}

// HandleSendEmail mails the summary to every recipient. Any invalid address
// rejects the whole request before the relay is contacted. Calling it again
// sends the mail again.
func (h *EmailHandlerImpl) HandleSendEmail(c echo.Context) error {
	var req models.EmailDistributionRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(MsgInvalidJSON, err)
	}

	if req.Recipients == "" || req.Summary == "" {
		return NewBadRequestError(MsgRecipientsRequired, nil)
	}

	recipients, err := validate.EmailList(req.Recipients)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	receipt, err := h.mailer.Send(ctx, recipients, req.Summary, req.SubjectOrDefault())
	if err != nil {
		return err
	}

	h.log.InfoContext(ctx, "Summary is sent",
		"recipientCount", receipt.RecipientCount)

	return c.JSON(http.StatusOK, emailResponse{
		Success:    true,
		Message:    fmt.Sprintf("Summary sent successfully to %d recipient(s)", receipt.RecipientCount),
		Recipients: recipients,
	})
}
