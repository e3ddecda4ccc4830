package posapi

import (
	"errors"

	"github.com/ridloal/pos-web-client/internal/posapi/domain"
)

// ErrInvalidInput marks form input rejected before any backend call.
var ErrInvalidInput = errors.New("invalid input")

// ActionError is a failed create/update/delete or a failed detail load.
// Message is what the user is told; Err is the transport cause, nil when
// the backend answered with success=false.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ActionError) Unwrap() error { return e.Err }

// Outcome turns the answer to a mutation into the success text or an
// ActionError carrying the backend message, else fallback.
func Outcome(resp *domain.Result, err error, success, fallback string) (string, error) {
	if err != nil {
		return "", &ActionError{Message: MessageOr(err, fallback), Err: err}
	}
	if !resp.Success {
		return "", &ActionError{Message: resp.MessageOr(fallback)}
	}
	return success, nil
}

// Rejected builds the ActionError for a load answered with success=false.
func Rejected(env domain.Envelope, fallback string) error {
	return &ActionError{Message: env.MessageOr(fallback)}
}

// Failed wraps a transport error of a load with the user facing fallback.
func Failed(err error, fallback string) error {
	return &ActionError{Message: MessageOr(err, fallback), Err: err}
}

// Invalid reports form input that failed validation.
func Invalid(message string) error {
	return &ActionError{Message: message, Err: ErrInvalidInput}
}
