package llm

import (
	"context"
	"errors"
	"fmt"
)

// Chat roles accepted by chat-completion endpoints.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Transport sends a single chat-completion request to a remote endpoint.
// Implementations must not retry; a failed delivery is reported as *TransportError.
type Transport interface {
	Send(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// ChatMessage is one entry in the messages array of a completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the body POSTed to {base}/chat/completions.
type CompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// CompletionResponse is the subset of the completion envelope we read.
type CompletionResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message ResponseMessage `json:"message"`
}

type ResponseMessage struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content"`
}

// NewCompletionRequest builds a request holding exactly one system message
// followed by exactly one user message.
func NewCompletionRequest(model, system, user string) *CompletionRequest {
	return &CompletionRequest{
		Model: model,
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: user},
		},
	}
}

// TransportError describes a failed delivery. StatusCode is zero when no
// HTTP response was received. Permanent marks local failures that happen
// before anything is sent.
type TransportError struct {
	StatusCode int
	Code       string
	Message    string
	Canceled   bool
	Permanent  bool
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Canceled:
		return fmt.Sprintf("llm: request canceled: %s", e.Message)
	case e.StatusCode != 0 && e.Code != "":
		return fmt.Sprintf("llm: upstream returned status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("llm: upstream returned status %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("llm: %s", e.Message)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Temporary reports whether repeating the call may succeed.
func (e *TransportError) Temporary() bool {
	if e.Permanent {
		return false
	}
	if e.Canceled || e.StatusCode == 0 {
		return true
	}
	return e.StatusCode == 408 || e.StatusCode == 429 || e.StatusCode >= 500
}

// requestFailure wraps a transport-level error, flagging context expiry.
func requestFailure(message string, err error) *TransportError {
	return &TransportError{
		Message:  fmt.Sprintf("%s: %v", message, err),
		Canceled: errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded),
		Err:      err,
	}
}
