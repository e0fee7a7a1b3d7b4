// Package summarizer turns a transcript and an instruction into a summary
// using a hosted chat-completion provider.
package summarizer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyContent is returned before any provider call when the transcript is empty.
	ErrEmptyContent = errors.New("content is empty")

	// ErrEmptyInstruction is returned before any provider call when the instruction is empty.
	ErrEmptyInstruction = errors.New("instruction is empty")

	// ErrEmptyCompletion is returned when the provider answered without any text.
	ErrEmptyCompletion = errors.New("no summary generated")

	// ErrMissingAPIKey is wrapped in a ProviderError when no key is configured.
	ErrMissingAPIKey = errors.New("completion provider api key is not configured")
)

// ProviderError is any transport or provider-side failure. It is never retried.
type ProviderError struct {
	Detail string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("completion provider: %s", e.Detail)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
