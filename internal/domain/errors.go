package domain

import (
	"errors"
	"fmt"
)

type errString string

func (e errString) Error() string { return string(e) }

var (
	ErrNotFound     = errString("not found")
	ErrValidation   = errString("validation error")
	ErrCapability   = errString("capability unavailable")
	ErrTimeout      = errString("timeout")
	ErrPrecondition = errString("precondition violation")
)

// Validation errors that sessions return alongside their unchanged state.
var (
	ErrNoInput           = fmt.Errorf("%w: no input staged", ErrValidation)
	ErrInvalidTransition = fmt.Errorf("%w: invalid state transition", ErrValidation)
	ErrBusy              = fmt.Errorf("%w: classification already in flight", ErrValidation)
)

// FailureKind groups the reasons a session can land in failed.
type FailureKind string

const (
	FailureCapability FailureKind = "capability"
	FailureTimeout    FailureKind = "timeout"
	FailureInternal   FailureKind = "internal"
)

// Failure is the displayable reason attached to a failed session.
type Failure struct {
	Kind   FailureKind `json:"kind"`
	Reason string      `json:"reason"`
}

// FailureFrom classifies an error from the classification pipeline.
func FailureFrom(err error) Failure {
	switch {
	case errors.Is(err, ErrTimeout):
		return Failure{Kind: FailureTimeout, Reason: err.Error()}
	case errors.Is(err, ErrPrecondition):
		return Failure{Kind: FailureInternal, Reason: err.Error()}
	default:
		return Failure{Kind: FailureCapability, Reason: err.Error()}
	}
}
