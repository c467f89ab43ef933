// Package chart turns a natural-language query into a schema-validated
// chart-options document.
package chart

import (
	"context"
	"encoding/json"
	"log/slog"

	"chartgen/internal/llm"
	"chartgen/internal/schema"
)

// SystemInstruction is sent as the system message of every completion request.
const SystemInstruction = "You are a chart generator. Return ONLY valid JSON with ECharts options."

// Validator checks a JSON document and reports the outcome as a value.
type Validator interface {
	Validate(doc []byte) schema.Result
}

// Generator composes transport, parser and validator for one call at a time.
// It holds no per-call state and may be shared between goroutines.
type Generator struct {
	transport llm.Transport
	validator Validator
	model     string
}

func NewGenerator(transport llm.Transport, validator Validator, model string) *Generator {
	return &Generator{transport: transport, validator: validator, model: model}
}

// Model returns the model identifier sent with every request.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends query to the model and returns the validated options.
// Every failure is a *GenerationError; no document is returned alongside one.
func (g *Generator) Generate(ctx context.Context, query string) (json.RawMessage, error) {
	req := llm.NewCompletionRequest(g.model, SystemInstruction, query)

	slog.Debug("Sending chart completion request", "stage", StageSending, "model", g.model)
	resp, err := g.transport.Send(ctx, req)
	if err != nil {
		return nil, Classify(err)
	}
	// A response that raced with cancellation is discarded unparsed.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, Classify(ctxErr)
	}

	slog.Debug("Parsing chart completion", "stage", StageParsing)
	doc, err := ParseResponse(resp)
	if err != nil {
		return nil, Classify(err)
	}

	slog.Debug("Validating chart options", "stage", StageValidating)
	res := g.validator.Validate(doc)
	if !res.Valid {
		return nil, &GenerationError{
			Kind:       KindSchemaViolation,
			Stage:      StageValidating,
			Message:    "response does not match chart options schema",
			Violations: res.Violations,
		}
	}

	slog.Debug("Chart options generated", "stage", StageSucceeded, "bytes", len(doc))
	return doc, nil
}
