package valuation

import (
	"errors"
	"fmt"
)

// ErrArtifactsUnavailable means no model provider is loaded. It is a
// process-level condition: valuation stays disabled until artifacts are
// (re)loaded, while validation and uplift keep working.
var ErrArtifactsUnavailable = errors.New("valuation artifacts unavailable")

// AlignmentError means the raw attributes could not be projected onto
// the model's training schema (scaler dimension mismatch and the like).
type AlignmentError struct {
	Reason string
	Err    error
}

func (e *AlignmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("feature alignment failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("feature alignment failed: %s", e.Reason)
}

func (e *AlignmentError) Unwrap() error { return e.Err }

// InferenceError means the model rejected or failed on an aligned
// feature vector. The request still yields warnings and uplift.
type InferenceError struct {
	Reason string
	Err    error
}

func (e *InferenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model inference failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("model inference failed: %s", e.Reason)
}

func (e *InferenceError) Unwrap() error { return e.Err }
