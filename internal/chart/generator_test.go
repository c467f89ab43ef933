package chart_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chartgen/internal/chart"
	"chartgen/internal/llm"
	"chartgen/internal/llm/mocks"
	"chartgen/internal/schema"
)

const salesQuery = "show sales by month as a bar chart"

const salesOptions = `{"xAxis":{"type":"category","data":["Jan","Feb","Mar"]},"yAxis":{"type":"value"},"series":[{"type":"bar","data":[120,200,150]}]}`

func completion(content string) *llm.CompletionResponse {
	return &llm.CompletionResponse{Choices: []llm.Choice{{Message: llm.ResponseMessage{Role: "assistant", Content: content}}}}
}

// spyValidator records whether validation ran.
type spyValidator struct {
	inner chart.Validator
	mu    sync.Mutex
	calls int
}

func (s *spyValidator) Validate(doc []byte) schema.Result {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.inner.Validate(doc)
}

func setupGenerator(t *testing.T) (*chart.Generator, *mocks.MockTransport, *spyValidator) {
	v, err := schema.Default()
	require.NoError(t, err)
	spy := &spyValidator{inner: v}
	transport := mocks.NewMockTransport(t)
	return chart.NewGenerator(transport, spy, "gpt4all"), transport, spy
}

func requireKind(t *testing.T, err error, kind chart.Kind) *chart.GenerationError {
	t.Helper()
	var gerr *chart.GenerationError
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, kind, gerr.Kind)
	return gerr
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - returns exactly the model's document", func(t *testing.T) {
		gen, transport, _ := setupGenerator(t)
		transport.On("Send", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
			return req.Model == "gpt4all" &&
				len(req.Messages) == 2 &&
				req.Messages[0] == llm.ChatMessage{Role: llm.RoleSystem, Content: chart.SystemInstruction} &&
				req.Messages[1] == llm.ChatMessage{Role: llm.RoleUser, Content: salesQuery}
		})).Return(completion(salesOptions), nil).Once()

		doc, err := gen.Generate(ctx, salesQuery)

		require.NoError(t, err)
		assert.Equal(t, salesOptions, string(doc))
	})

	t.Run("Failure - content is not JSON", func(t *testing.T) {
		gen, transport, spy := setupGenerator(t)
		transport.On("Send", mock.Anything, mock.Anything).Return(completion("not json"), nil).Once()

		doc, err := gen.Generate(ctx, salesQuery)

		assert.Nil(t, doc)
		gerr := requireKind(t, err, chart.KindInvalidJSON)
		assert.Equal(t, "not json", gerr.Raw)
		assert.Equal(t, chart.StageParsing, gerr.Stage)
		assert.Zero(t, spy.calls)
	})

	t.Run("Failure - required series missing", func(t *testing.T) {
		gen, transport, _ := setupGenerator(t)
		transport.On("Send", mock.Anything, mock.Anything).Return(completion("{}"), nil).Once()

		doc, err := gen.Generate(ctx, salesQuery)

		assert.Nil(t, doc)
		gerr := requireKind(t, err, chart.KindSchemaViolation)
		require.NotEmpty(t, gerr.Violations)
		assert.Contains(t, gerr.Violations[0].Message, "series")
		assert.Equal(t, chart.StageValidating, gerr.Stage)
	})

	t.Run("Failure - no choices", func(t *testing.T) {
		gen, transport, spy := setupGenerator(t)
		transport.On("Send", mock.Anything, mock.Anything).Return(&llm.CompletionResponse{Choices: []llm.Choice{}}, nil).Once()

		doc, err := gen.Generate(ctx, salesQuery)

		assert.Nil(t, doc)
		requireKind(t, err, chart.KindEmptyResponse)
		assert.Zero(t, spy.calls)
	})

	t.Run("Failure - blank content", func(t *testing.T) {
		gen, transport, _ := setupGenerator(t)
		transport.On("Send", mock.Anything, mock.Anything).Return(completion("  \n"), nil).Once()

		_, err := gen.Generate(ctx, salesQuery)

		requireKind(t, err, chart.KindEmptyResponse)
	})

	t.Run("Failure - connection error skips parse and validate", func(t *testing.T) {
		gen, transport, spy := setupGenerator(t)
		connErr := &llm.TransportError{Message: "dial tcp: connection refused", Err: errors.New("connection refused")}
		transport.On("Send", mock.Anything, mock.Anything).Return(nil, connErr).Once()

		doc, err := gen.Generate(ctx, salesQuery)

		assert.Nil(t, doc)
		gerr := requireKind(t, err, chart.KindTransportFailure)
		assert.Equal(t, chart.StageSending, gerr.Stage)
		assert.True(t, gerr.Retryable())
		assert.False(t, gerr.Canceled())
		assert.ErrorIs(t, err, connErr)
		assert.Zero(t, spy.calls)
	})

	t.Run("Failure - cancellation surfaces a canceled transport failure", func(t *testing.T) {
		gen, transport, spy := setupGenerator(t)
		cctx, cancel := context.WithCancel(ctx)
		transport.On("Send", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(completion(salesOptions), nil).Once()

		doc, err := gen.Generate(cctx, salesQuery)

		assert.Nil(t, doc)
		gerr := requireKind(t, err, chart.KindTransportFailure)
		assert.True(t, gerr.Canceled())
		assert.Zero(t, spy.calls)
	})

	t.Run("Empty query is passed through", func(t *testing.T) {
		gen, transport, _ := setupGenerator(t)
		transport.On("Send", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
			return req.Messages[1].Content == ""
		})).Return(nil, &llm.TransportError{StatusCode: 400, Message: "empty prompt"}).Once()

		_, err := gen.Generate(ctx, "")

		gerr := requireKind(t, err, chart.KindTransportFailure)
		assert.False(t, gerr.Retryable())
	})
}

// Any schema-conformant document survives the pipeline unchanged.
func TestGenerator_RoundTrip(t *testing.T) {
	docs := []any{
		map[string]any{"series": []any{map[string]any{"type": "line", "data": []any{1.5, 2.0, 3.25}}}},
		map[string]any{
			"title":  map[string]any{"text": "Share"},
			"series": []any{map[string]any{"type": "pie", "radius": "50%", "data": []any{map[string]any{"name": "a", "value": 1.0}}}},
		},
		map[string]any{"xAxis": []any{map[string]any{"type": "time"}}, "series": []any{map[string]any{"type": "scatter"}, map[string]any{"type": "line", "smooth": true}}},
	}

	for i, d := range docs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			gen, transport, _ := setupGenerator(t)
			encoded, err := json.Marshal(d)
			require.NoError(t, err)
			transport.On("Send", mock.Anything, mock.Anything).Return(completion(string(encoded)), nil).Once()

			doc, err := gen.Generate(context.Background(), "any")
			require.NoError(t, err)

			var got any
			require.NoError(t, json.Unmarshal(doc, &got))
			assert.Equal(t, d, got)
		})
	}
}

func TestGenerator_Concurrent(t *testing.T) {
	gen, transport, _ := setupGenerator(t)
	transport.On("Send", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
		return req.Messages[1].Content == "good"
	})).Return(completion(salesOptions), nil)
	transport.On("Send", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
		return req.Messages[1].Content == "bad"
	})).Return(completion(`{"title":{"text":"x"}}`), nil)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				doc, err := gen.Generate(context.Background(), "good")
				assert.NoError(t, err)
				assert.JSONEq(t, salesOptions, string(doc))
				return
			}
			doc, err := gen.Generate(context.Background(), "bad")
			assert.Nil(t, doc)
			var gerr *chart.GenerationError
			if assert.ErrorAs(t, err, &gerr) {
				assert.Equal(t, chart.KindSchemaViolation, gerr.Kind)
				assert.Len(t, gerr.Violations, 1)
			}
		}(i)
	}
	wg.Wait()
}
