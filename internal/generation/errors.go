package generation

import (
	"errors"
	"fmt"
)

// ErrNoCandidate signals that generation produced no usable candidate.
// Callers treat it as "candidate == original" rather than failing the run.
var ErrNoCandidate = errors.New("no candidate available")

// APICallError represents a failure calling the generation provider
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
