package booking

import (
	"errors"
	"fmt"

	"weddingplanner/models"
)

var (
	// ErrSessionNotFound is returned for unknown or expired checkout sessions.
	ErrSessionNotFound = errors.New("checkout session not found or expired")
	// ErrStaleCatalog is returned when a catalog refresh was superseded.
	ErrStaleCatalog = errors.New("catalog response superseded by a newer request")
	// ErrSubmissionDisabled is returned by the submitter used when no
	// booking-write service is configured.
	ErrSubmissionDisabled = errors.New("booking submission is not configured")
	// ErrInvalidTransition matches every TransitionError.
	ErrInvalidTransition = errors.New("invalid checkout transition")
)

// TransitionError reports an operation the current state does not allow.
type TransitionError struct {
	From models.CheckoutState
	Op   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a checkout in state %s", e.Op, e.From)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// SubmissionError wraps the submitter failure surfaced under the strict policy.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return "booking submission failed: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
