package repository

import (
	"context"

	"chartgen/internal/model"
)

// Repository defines the storage operations for generation history.
type Repository interface {
	CreateGeneration(ctx context.Context, gen *model.Generation) error
	GetGeneration(ctx context.Context, id string) (*model.Generation, error)
	ListGenerations(ctx context.Context, limit int) ([]*model.GenerationSummary, error)
}
