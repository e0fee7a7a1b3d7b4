package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/meeting-notes/backend/internal/config"
	"github.com/meeting-notes/backend/internal/models"
	"github.com/meeting-notes/backend/internal/prompt"
)

// Sampling parameters favour consistent phrasing and cap response cost.
const (
	temperature       = 0.3
	maxTokens   int64 = 2000
	topP              = 1.0
)

// OpenAISummarizer calls the Chat Completions API.
type OpenAISummarizer struct {
	client  openai.Client
	apiKey  string
	model   string
	timeout time.Duration
}

// NewOpenAISummarizer builds a summarizer from the provider settings. A missing
// API key is accepted here and reported by Summarize.
func NewOpenAISummarizer(cfg config.OpenAIConfig, timeout time.Duration) *OpenAISummarizer {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAISummarizer{
		client:  openai.NewClient(opts...),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: timeout,
	}
}

// Summarize validates its inputs, then makes exactly one completion request.
func (s *OpenAISummarizer) Summarize(
	ctx context.Context,
	content string,
	instruction string,
) (models.SummaryResult, error) {
	if content == "" {
		return models.SummaryResult{}, ErrEmptyContent
	}
	if instruction == "" {
		return models.SummaryResult{}, ErrEmptyInstruction
	}
	if s.apiKey == "" {
		return models.SummaryResult{}, &ProviderError{Detail: ErrMissingAPIKey.Error(), Err: ErrMissingAPIKey}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	p := prompt.Build(content, instruction)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.System),
			openai.UserMessage(p.User),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
		TopP:        openai.Float(topP),
	})
	if err != nil {
		return models.SummaryResult{}, &ProviderError{Detail: providerDetail(err), Err: err}
	}

	if len(resp.Choices) == 0 {
		return models.SummaryResult{}, ErrEmptyCompletion
	}
	summary := resp.Choices[0].Message.Content
	if strings.TrimSpace(summary) == "" {
		return models.SummaryResult{}, ErrEmptyCompletion
	}

	return models.SummaryResult{Summary: summary}, nil
}

func providerDetail(err error) string {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Sprintf("status %d: %s", apiErr.StatusCode, apiErr.Message)
	}
	return err.Error()
}
