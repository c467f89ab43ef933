package interfaces

import (
	"context"
	"encoding/json"

	"chartgen/internal/model"
	"chartgen/internal/schema"
	"chartgen/internal/service"
)

// This file defines the contracts the API layer depends on, so handlers can
// be tested against mocks instead of a live model endpoint.

// ChartService defines the contract for chart generation and history.
type ChartService interface {
	Generate(ctx context.Context, query string) (*service.GenerateResult, error)
	Validate(ctx context.Context, options json.RawMessage) schema.Result
	GetGeneration(ctx context.Context, id string) (*model.Generation, error)
	ListGenerations(ctx context.Context, limit int) ([]*model.GenerationSummary, error)
}

var _ ChartService = (*service.ChartService)(nil)
