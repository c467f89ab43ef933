package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// maxErrorBody bounds how much of a non-2xx body is kept for diagnostics.
const maxErrorBody = 4096

type httpTransport struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type HTTPOption func(*httpTransport)

func WithHTTPClient(client *http.Client) HTTPOption {
	return func(t *httpTransport) {
		t.client = client
	}
}

func WithAPIKey(key string) HTTPOption {
	return func(t *httpTransport) {
		t.apiKey = strings.TrimSpace(key)
	}
}

// NewHTTPTransport returns a Transport that talks to an OpenAI-compatible
// chat-completions endpoint rooted at baseURL.
func NewHTTPTransport(baseURL string, opts ...HTTPOption) Transport {
	t := &httpTransport{
		client:  &http.Client{},
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func chatURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/chat/completions"
}

func (t *httpTransport) Send(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("could not marshal request: %v", err), Permanent: true, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, chatURL(t.baseURL), bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("could not create http request: %v", err), Permanent: true, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if t.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+t.apiKey)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, requestFailure("http request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, statusError(resp.StatusCode, bodyBytes)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, requestFailure("could not read response body", err)
	}

	var completion CompletionResponse
	if err := json.Unmarshal(bodyBytes, &completion); err != nil {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("could not decode response envelope: %v", err),
			Err:        err,
		}
	}
	return &completion, nil
}

// statusError builds a TransportError from a non-2xx response, preferring the
// OpenAI-style error.message/error.code fields when the body carries them.
func statusError(status int, body []byte) *TransportError {
	e := &TransportError{StatusCode: status, Message: strings.TrimSpace(string(body))}
	if !gjson.ValidBytes(body) {
		return e
	}
	if msg := gjson.GetBytes(body, "error.message"); msg.Exists() && msg.String() != "" {
		e.Message = msg.String()
	} else if msg := gjson.GetBytes(body, "error"); msg.Type == gjson.String {
		e.Message = msg.String()
	}
	if code := gjson.GetBytes(body, "error.code"); code.Exists() && code.Type != gjson.Null {
		e.Code = code.String()
	}
	return e
}
