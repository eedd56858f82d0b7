// Package analysis provides the LLM-backed relevance scorer and policy
// extractor.
package analysis

import (
	"fmt"

	"github.com/jonathan/vdp-scanner/internal/types"
)

// ClassifierError represents a failure of the external classifier: the
// service was unreachable, rate limited, or returned an unparsable reply.
type ClassifierError struct {
	Message string
	Kind    types.ErrorKind
	Cause   error
}

func (e *ClassifierError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("classifier error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("classifier error: %s", e.Message)
}

func (e *ClassifierError) Unwrap() error {
	return e.Cause
}

func classifierUnavailable(message string, cause error) *ClassifierError {
	return &ClassifierError{
		Message: message,
		Kind:    types.ErrClassifierUnavailable,
		Cause:   cause,
	}
}
