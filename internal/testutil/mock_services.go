// mock_services.go - Fake completion client and mail sender for handler tests
package testutil

import (
	"context"
	"sync"

	"github.com/meeting-notes/backend/internal/models"
)

// SummarizeCall records one Summarize invocation.
type SummarizeCall struct {
	Content     string
	Instruction string
}

// MockSummarizer implements api.Summarizer for testing
type MockSummarizer struct {
	Summary string
	Err     error

	mu    sync.Mutex
	calls []SummarizeCall
}

// NewMockSummarizer returns a summarizer that answers with summary.
func NewMockSummarizer(summary string) *MockSummarizer {
	return &MockSummarizer{Summary: summary}
}

func (m *MockSummarizer) Summarize(ctx context.Context, content, instruction string) (models.SummaryResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, SummarizeCall{Content: content, Instruction: instruction})
	if m.Err != nil {
		return models.SummaryResult{}, m.Err
	}
	return models.SummaryResult{Summary: m.Summary}, nil
}

// Calls returns a copy of the recorded calls.
func (m *MockSummarizer) Calls() []SummarizeCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SummarizeCall(nil), m.calls...)
}

// SendCall records one Send invocation.
type SendCall struct {
	Recipients []string
	Summary    string
	Subject    string
}

// MockMailer implements api.Mailer for testing
type MockMailer struct {
	Err error

	mu    sync.Mutex
	calls []SendCall
}

// NewMockMailer returns a mailer that accepts every message.
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) Send(ctx context.Context, recipients []string, summary, subject string) (models.DeliveryReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, SendCall{
		Recipients: append([]string(nil), recipients...),
		Summary:    summary,
		Subject:    subject,
	})
	if m.Err != nil {
		return models.DeliveryReceipt{}, m.Err
	}
	return models.DeliveryReceipt{RecipientCount: len(recipients)}, nil
}

// Calls returns a copy of the recorded calls.
func (m *MockMailer) Calls() []SendCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SendCall(nil), m.calls...)
}
