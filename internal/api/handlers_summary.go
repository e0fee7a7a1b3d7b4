// handlers_summary.go - Summary generation handler
package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meeting-notes/backend/internal/models"
)

// SummaryHandlerImpl implements the SummaryHandler interface
type SummaryHandlerImpl struct {
	summarizer Summarizer
	log        *slog.Logger
}

// NewSummaryHandler creates a new summary handler instance
func NewSummaryHandler(s Summarizer, log *slog.Logger) SummaryHandler {
	return &SummaryHandlerImpl{summarizer: s, log: log}
}

type summaryResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
}

// HandleGenerateSummary asks the completion provider for a summary of the
// posted transcript. Every call is billed by the provider; nothing is cached.
func (h *SummaryHandlerImpl) HandleGenerateSummary(c echo.Context) error {
	var req models.SummaryRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError(MsgInvalidJSON, err)
	}

	if req.Content == "" || req.Prompt == "" {
		return NewBadRequestError(MsgContentPromptRequired, nil)
	}

	ctx := c.Request().Context()
	result, err := h.summarizer.Summarize(ctx, req.Content, req.Prompt)
	if err != nil {
		return err
	}

	h.log.InfoContext(ctx, "Summary is generated",
		"contentLength", len(req.Content),
		"summaryLength", len(result.Summary))

	return c.JSON(http.StatusOK, summaryResponse{
		Success: true,
		Summary: result.Summary,
	})
}
