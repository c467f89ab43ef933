package chart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chartgen/internal/llm"
	"chartgen/internal/schema"
)

// Kind is the closed set of reasons a generation can fail.
type Kind string

const (
	KindTransportFailure Kind = "transport_failure"
	KindEmptyResponse    Kind = "empty_response"
	KindInvalidJSON      Kind = "invalid_json"
	KindSchemaViolation  Kind = "schema_violation"
)

// Stage is a step of a single generation. A GenerationError records the
// stage it was raised in; later stages never run.
type Stage string

const (
	StageSending    Stage = "sending"
	StageParsing    Stage = "parsing"
	StageValidating Stage = "validating"
	StageSucceeded  Stage = "succeeded"
)

// snippetLimit bounds the raw model output quoted in error messages.
const snippetLimit = 200

// GenerationError is the only error type Generate returns.
type GenerationError struct {
	Kind  Kind
	Stage Stage
	// Raw is the model output for InvalidJSON failures.
	Raw        string
	Violations []schema.Violation
	Message    string
	Err        error
}

func (e *GenerationError) Error() string {
	switch e.Kind {
	case KindInvalidJSON:
		return fmt.Sprintf("chart: %s: %s (content: %q)", e.Kind, e.Message, Snippet(e.Raw))
	case KindSchemaViolation:
		parts := make([]string, len(e.Violations))
		for i, v := range e.Violations {
			parts[i] = v.String()
		}
		return fmt.Sprintf("chart: %s: %s", e.Kind, strings.Join(parts, "; "))
	default:
		return fmt.Sprintf("chart: %s: %s", e.Kind, e.Message)
	}
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Retryable reports whether calling Generate again may succeed. Only
// transport failures qualify.
func (e *GenerationError) Retryable() bool {
	if e.Kind != KindTransportFailure {
		return false
	}
	var terr *llm.TransportError
	if errors.As(e.Err, &terr) {
		return terr.Temporary()
	}
	return true
}

// Canceled reports whether the call was abandoned because its context ended.
func (e *GenerationError) Canceled() bool {
	var terr *llm.TransportError
	if errors.As(e.Err, &terr) && terr.Canceled {
		return true
	}
	return errors.Is(e.Err, context.Canceled) || errors.Is(e.Err, context.DeadlineExceeded)
}

// Classify maps any pipeline failure onto a GenerationError. Errors that are
// not already classified are attributed to the transport, the only stage
// that talks to the outside world.
func Classify(err error) *GenerationError {
	if err == nil {
		return nil
	}
	var gerr *GenerationError
	if errors.As(err, &gerr) {
		return gerr
	}
	var terr *llm.TransportError
	if errors.As(err, &terr) {
		return &GenerationError{Kind: KindTransportFailure, Stage: StageSending, Message: terr.Error(), Err: err}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &GenerationError{
			Kind:    KindTransportFailure,
			Stage:   StageSending,
			Message: "request canceled: " + err.Error(),
			Err:     &llm.TransportError{Canceled: true, Message: err.Error(), Err: err},
		}
	}
	return &GenerationError{Kind: KindTransportFailure, Stage: StageSending, Message: err.Error(), Err: err}
}

// Snippet shortens s for diagnostics.
func Snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetLimit {
		return s
	}
	return string(runes[:snippetLimit]) + "..."
}
