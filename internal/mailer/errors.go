package mailer

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRecipients is returned when Send is called with an empty list.
	ErrNoRecipients = errors.New("no recipients")

	// ErrMissingCredentials is wrapped in a RelayError when no sender identity is configured.
	ErrMissingCredentials = errors.New("mail relay credentials are not configured")
)

// RelayError is any failure building the message or talking to the relay.
type RelayError struct {
	Detail string
	Err    error
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("mail relay: %s", e.Detail)
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

func relayError(detail string, err error) *RelayError {
	if err != nil {
		detail = fmt.Sprintf("%s: %v", detail, err)
	}
	return &RelayError{Detail: detail, Err: err}
}
