package model

import (
	"encoding/json"
	"time"

	"chartgen/internal/schema"
)

// Outcome values stored with each generation. Failures use the chart error kind.
const OutcomeSucceeded = "succeeded"

// Generation is the history record of one Generate call.
type Generation struct {
	ID         string             `json:"id"`
	Query      string             `json:"query"`
	Model      string             `json:"model"`
	Outcome    string             `json:"outcome"`
	Options    json.RawMessage    `json:"options,omitempty"`
	Error      string             `json:"error,omitempty"`
	Violations []schema.Violation `json:"violations,omitempty"`
	DurationMS int64              `json:"duration_ms"`
	CreatedAt  time.Time          `json:"created_at"`
}

// GenerationSummary is the list view of a Generation, without the document.
type GenerationSummary struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Model     string    `json:"model"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}
