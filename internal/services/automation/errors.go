package automation

import "errors"

var (
	// ErrValidationFailed is wrapped by every ValidationError
	ErrValidationFailed = errors.New("automation validation failed")
	// ErrRunInProgress is returned when another run holds the lock
	ErrRunInProgress = errors.New("automation run already in progress")
)

// ValidationError reports a provider configuration problem found before generation
type ValidationError struct {
	Provider string
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
