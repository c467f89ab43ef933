package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type openaiTransport struct {
	client *openai.Client
}

// NewOpenAITransport returns a Transport backed by the go-openai SDK. The SDK
// posts to {baseURL}/chat/completions, so any OpenAI-compatible server works.
func NewOpenAITransport(baseURL, apiKey string, httpClient *http.Client) Transport {
	cfg := openai.DefaultConfig(strings.TrimSpace(apiKey))
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &openaiTransport{client: openai.NewClientWithConfig(cfg)}
}

func (t *openaiTransport) Send(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
	})
	if err != nil {
		return nil, fromOpenAIError(err)
	}

	out := &CompletionResponse{Choices: make([]Choice, len(resp.Choices))}
	for i, c := range resp.Choices {
		out.Choices[i] = Choice{Message: ResponseMessage{Role: c.Message.Role, Content: c.Message.Content}}
	}
	return out, nil
}

func fromOpenAIError(err error) *TransportError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		e := &TransportError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
		if apiErr.Code != nil {
			e.Code = fmt.Sprint(apiErr.Code)
		}
		return e
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := "request failed"
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return &TransportError{StatusCode: reqErr.HTTPStatusCode, Message: msg, Err: err}
	}

	return requestFailure("chat completion failed", err)
}
