package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"chartgen/internal/chart"
	app_errors "chartgen/internal/errors"
	"chartgen/internal/metrics"
	"chartgen/internal/model"
	"chartgen/internal/repository"
	"chartgen/internal/schema"
)

// GenerateResult is returned for a successful generation.
type GenerateResult struct {
	ID      string          `json:"id"`
	Options json.RawMessage `json:"options"`
}

// ChartService wraps the generator with a per-call timeout, history
// recording and metrics.
type ChartService struct {
	generator *chart.Generator
	validator chart.Validator
	repo      repository.Repository
	timeout   time.Duration
}

func NewChartService(generator *chart.Generator, validator chart.Validator, repo repository.Repository, timeout time.Duration) *ChartService {
	return &ChartService{generator: generator, validator: validator, repo: repo, timeout: timeout}
}

// Generate produces validated chart options for query. Failures are returned
// as *chart.GenerationError, untouched, so callers can inspect the kind.
func (s *ChartService) Generate(ctx context.Context, query string) (*GenerateResult, error) {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	options, err := s.generator.Generate(callCtx, query)
	elapsed := time.Since(start)

	gen := &model.Generation{
		ID:         uuid.NewString(),
		Query:      query,
		Model:      s.generator.Model(),
		Outcome:    model.OutcomeSucceeded,
		Options:    options,
		DurationMS: elapsed.Milliseconds(),
		CreatedAt:  start.UTC(),
	}

	var gerr *chart.GenerationError
	if err != nil {
		gerr = chart.Classify(err)
		gen.Outcome = string(gerr.Kind)
		gen.Error = gerr.Error()
		gen.Violations = gerr.Violations
		slog.Warn("Chart generation failed",
			"generation_id", gen.ID,
			"kind", gerr.Kind,
			"stage", gerr.Stage,
			"retryable", gerr.Retryable(),
			"violations", gerr.Violations,
			"error", err,
		)
	}
	metrics.ObserveGeneration(gen.Outcome, elapsed)

	// History is best effort; it must not turn a generation into a failure.
	// The parent context is used so a timed-out call is still recorded.
	if rErr := s.repo.CreateGeneration(context.WithoutCancel(ctx), gen); rErr != nil {
		slog.Error("Failed to record generation", "generation_id", gen.ID, "error", rErr)
	}

	if gerr != nil {
		return nil, gerr
	}
	slog.Info("Chart generated", "generation_id", gen.ID, "duration_ms", gen.DurationMS)
	return &GenerateResult{ID: gen.ID, Options: options}, nil
}

// Validate checks a caller-supplied document against the chart schema
// without contacting the model.
func (s *ChartService) Validate(_ context.Context, options json.RawMessage) schema.Result {
	res := s.validator.Validate(options)
	metrics.ObserveValidation(res.Valid)
	return res
}

// GetGeneration returns one history record.
func (s *ChartService) GetGeneration(ctx context.Context, id string) (*model.Generation, error) {
	gen, err := s.repo.GetGeneration(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: generation %s", app_errors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: could not get generation: %v", app_errors.ErrInternal, err)
	}
	return gen, nil
}

// ListGenerations returns the most recent history records, newest first.
func (s *ChartService) ListGenerations(ctx context.Context, limit int) ([]*model.GenerationSummary, error) {
	gens, err := s.repo.ListGenerations(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: could not list generations: %v", app_errors.ErrInternal, err)
	}
	return gens, nil
}
