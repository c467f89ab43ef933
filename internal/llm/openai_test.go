package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAITransport(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var captured CompletionRequest
		var capturedPath string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedPath = r.URL.Path
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "chatcmpl-1",
				"object": "chat.completion",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"series\":[{\"type\":\"bar\"}]}"}}]
			}`))
		}))
		defer server.Close()

		transport := NewOpenAITransport(server.URL+"/v1/", "sk-test", server.Client())

		resp, err := transport.Send(context.Background(), NewCompletionRequest("gpt4all", "sys", "bar chart"))

		require.NoError(t, err)
		require.Len(t, resp.Choices, 1)
		assert.Equal(t, `{"series":[{"type":"bar"}]}`, resp.Choices[0].Message.Content)
		assert.Equal(t, "/v1/chat/completions", capturedPath)
		assert.Equal(t, "gpt4all", captured.Model)
		require.Len(t, captured.Messages, 2)
		assert.Equal(t, RoleSystem, captured.Messages[0].Role)
		assert.Equal(t, "bar chart", captured.Messages[1].Content)
	})

	t.Run("API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"message":"model is loading","type":"server_error","code":"unavailable"}}`))
		}))
		defer server.Close()

		_, err := NewOpenAITransport(server.URL, "", nil).Send(context.Background(), NewCompletionRequest("m", "s", "q"))

		var terr *TransportError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, http.StatusServiceUnavailable, terr.StatusCode)
		assert.Equal(t, "model is loading", terr.Message)
		assert.Equal(t, "unavailable", terr.Code)
	})

	t.Run("Canceled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewOpenAITransport(server.URL, "", nil).Send(ctx, NewCompletionRequest("m", "s", "q"))

		var terr *TransportError
		require.ErrorAs(t, err, &terr)
		assert.True(t, terr.Canceled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
