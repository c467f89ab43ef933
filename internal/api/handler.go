package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chartgen/internal/chart"
	app_errors "chartgen/internal/errors"
	"chartgen/internal/interfaces"
)

const defaultListLimit = 50

// ChartHandler handles HTTP requests for chart generation and history.
type ChartHandler struct {
	service interfaces.ChartService
}

func NewChartHandler(svc interfaces.ChartService) *ChartHandler {
	return &ChartHandler{service: svc}
}

// GenerateChart godoc
// @Summary      Generate chart options
// @Description  Asks the language model for ECharts options matching the query and returns them once they pass schema validation.
// @Tags         Charts
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateChartRequest  true  "Natural-language chart request"
// @Success      200      {object}  service.GenerateResult
// @Failure      400      {object}  ErrorResponse
// @Failure      422      {object}  GenerationErrorResponse  "Model output violates the chart schema"
// @Failure      502      {object}  GenerationErrorResponse  "Upstream failure, empty or non-JSON output"
// @Failure      504      {object}  GenerationErrorResponse  "Upstream call timed out"
// @Router       /v1/charts [post]
func (h *ChartHandler) GenerateChart(w http.ResponseWriter, r *http.Request) {
	var req GenerateChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	res, err := h.service.Generate(r.Context(), req.Query)
	if err != nil {
		var gerr *chart.GenerationError
		if errors.As(err, &gerr) {
			respondWithGenerationError(w, gerr)
			return
		}
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

// ValidateChart godoc
// @Summary      Validate chart options
// @Description  Checks a chart options document against the configured schema without calling the model.
// @Tags         Charts
// @Accept       json
// @Produce      json
// @Param        request  body      ValidateChartRequest  true  "Chart options to check"
// @Success      200      {object}  schema.Result
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/charts/validate [post]
func (h *ChartHandler) ValidateChart(w http.ResponseWriter, r *http.Request) {
	var req ValidateChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.service.Validate(r.Context(), req.Options))
}

// ListGenerations godoc
// @Summary      List generations
// @Description  Returns the most recent generation attempts, newest first.
// @Tags         Generations
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of records (1-200)"  default(50)
// @Success      200    {array}   model.GenerationSummary
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /v1/generations [get]
func (h *ChartHandler) ListGenerations(w http.ResponseWriter, r *http.Request) {
	params := ListGenerationsParams{Limit: defaultListLimit}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, fmt.Errorf("%w: limit must be an integer", app_errors.ErrValidation))
			return
		}
		params.Limit = limit
	}
	if err := validateRequest(&params); err != nil {
		respondWithError(w, err)
		return
	}

	gens, err := h.service.ListGenerations(r.Context(), params.Limit)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, gens)
}

// GetGeneration godoc
// @Summary      Get a generation
// @Description  Returns one generation attempt including its options or failure details.
// @Tags         Generations
// @Produce      json
// @Param        generationID  path      string  true  "Generation ID"
// @Success      200           {object}  model.Generation
// @Failure      404           {object}  ErrorResponse
// @Router       /v1/generations/{generationID} [get]
func (h *ChartHandler) GetGeneration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "generationID")
	gen, err := h.service.GetGeneration(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	slog.Debug("Fetched generation", "generation_id", id, "outcome", gen.Outcome)
	respondWithJSON(w, http.StatusOK, gen)
}
