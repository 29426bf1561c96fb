package domain

import (
	"errors"
	"fmt"
)

// FailureKind classifies why the generative service did not produce a reply.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureUnauthenticated
	FailureQuotaExceeded
	FailureNetworkUnreachable
	FailureOther
	FailureEmptyOutput
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureUnauthenticated:
		return "unauthenticated"
	case FailureQuotaExceeded:
		return "quota_exceeded"
	case FailureNetworkUnreachable:
		return "network_unreachable"
	case FailureEmptyOutput:
		return "empty_output"
	default:
		return "other"
	}
}

// GenerationError is returned by generative service adapters so callers can
// branch on the failure kind without inspecting provider-specific errors.
type GenerationError struct {
	Kind FailureKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("generation failed: %s", e.Kind)
	}
	return fmt.Sprintf("generation failed: %s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FailureKindOf reports the failure kind carried by err. Errors that are not
// a *GenerationError count as FailureOther.
func FailureKindOf(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return FailureOther
}
