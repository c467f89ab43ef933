package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"chartgen/internal/chart"
	app_errors "chartgen/internal/errors"
	"chartgen/internal/schema"
)

// This file contains the request/response DTOs of the API and the helpers
// that write consistent JSON responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GenerationErrorResponse is returned when the model output could not be
// turned into valid chart options.
type GenerationErrorResponse struct {
	Error      string             `json:"error"`
	Kind       chart.Kind         `json:"kind" example:"schema_violation"`
	Retryable  bool               `json:"retryable"`
	Content    string             `json:"content,omitempty"`
	Violations []schema.Violation `json:"violations,omitempty"`
}

// GenerateChartRequest is the DTO for POST /v1/charts. An empty query is
// forwarded to the model as is.
type GenerateChartRequest struct {
	Query string `json:"query" validate:"max=8000" example:"show sales by month as a bar chart"`
}

// ValidateChartRequest is the DTO for POST /v1/charts/validate.
type ValidateChartRequest struct {
	Options json.RawMessage `json:"options" validate:"required" swaggertype:"object"`
}

// ListGenerationsParams holds the query parameters of GET /v1/generations.
type ListGenerationsParams struct {
	Limit int `validate:"min=1,max=200"`
}

// respondWithError maps business-layer sentinel errors to HTTP status codes
// and writes a standard JSON error body.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Validation messages are already written for the client.
		message = err.Error()
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithGenerationError maps a generation failure to a status code:
// 422 when the model answered with JSON of the wrong shape, 504 when the
// call was canceled or timed out, 502 for every other upstream problem.
func respondWithGenerationError(w http.ResponseWriter, gerr *chart.GenerationError) {
	statusCode := http.StatusBadGateway
	switch {
	case gerr.Kind == chart.KindSchemaViolation:
		statusCode = http.StatusUnprocessableEntity
	case gerr.Kind == chart.KindTransportFailure && gerr.Canceled():
		statusCode = http.StatusGatewayTimeout
	}

	body := GenerationErrorResponse{
		Error:      gerr.Message,
		Kind:       gerr.Kind,
		Retryable:  gerr.Retryable(),
		Violations: gerr.Violations,
	}
	if gerr.Kind == chart.KindInvalidJSON {
		body.Content = chart.Snippet(gerr.Raw)
	}

	respondWithJSON(w, statusCode, body)
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
