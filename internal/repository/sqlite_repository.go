package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"chartgen/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateGeneration(ctx context.Context, gen *model.Generation) error {
	var violations sql.NullString
	if len(gen.Violations) > 0 {
		b, err := json.Marshal(gen.Violations)
		if err != nil {
			return fmt.Errorf("could not marshal violations: %w", err)
		}
		violations = sql.NullString{String: string(b), Valid: true}
	}

	query := `INSERT INTO generations (id, query, model, outcome, options, error, violations, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		gen.ID, gen.Query, gen.Model, gen.Outcome,
		nullString(string(gen.Options)), nullString(gen.Error), violations,
		gen.DurationMS, gen.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("could not insert generation: %w", err)
	}
	return nil
}

func (r *sqliteRepository) GetGeneration(ctx context.Context, id string) (*model.Generation, error) {
	query := `SELECT id, query, model, outcome, options, error, violations, duration_ms, created_at
		FROM generations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var gen model.Generation
	var options, errMsg, violations sql.NullString
	err := row.Scan(&gen.ID, &gen.Query, &gen.Model, &gen.Outcome, &options, &errMsg, &violations, &gen.DurationMS, &gen.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if options.Valid {
		gen.Options = json.RawMessage(options.String)
	}
	gen.Error = errMsg.String
	if violations.Valid {
		if err := json.Unmarshal([]byte(violations.String), &gen.Violations); err != nil {
			return nil, fmt.Errorf("could not decode violations for generation %s: %w", id, err)
		}
	}
	return &gen, nil
}

func (r *sqliteRepository) ListGenerations(ctx context.Context, limit int) ([]*model.GenerationSummary, error) {
	query := "SELECT id, query, model, outcome, created_at FROM generations ORDER BY created_at DESC LIMIT ?"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	gens := make([]*model.GenerationSummary, 0)
	for rows.Next() {
		var g model.GenerationSummary
		if err := rows.Scan(&g.ID, &g.Query, &g.Model, &g.Outcome, &g.CreatedAt); err != nil {
			return nil, err
		}
		gens = append(gens, &g)
	}
	return gens, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
