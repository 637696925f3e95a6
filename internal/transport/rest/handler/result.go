package handler

import (
	"net/http"

	"chatfuture/internal/model"
	"chatfuture/internal/service"
	"chatfuture/internal/transport/rest/middleware"
)

// ResultHandler handles scoring endpoints
type ResultHandler struct {
	scoring *service.ScoringService
}

// NewResultHandler creates a new result handler
func NewResultHandler(scoring *service.ScoringService) *ResultHandler {
	return &ResultHandler{scoring: scoring}
}

// ResultResponse pairs the raw result with its presentation view
type ResultResponse struct {
	Result  *model.AssessmentResult `json:"result"`
	Summary *model.ResultSummary    `json:"summary"`
}

// Calculate handles POST /v1/results
func (h *ResultHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	result, err := h.scoring.Calculate(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ResultResponse{Result: result, Summary: h.scoring.Summarize(result)})
}

// Get handles GET /v1/results
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	result := h.scoring.LatestResult(r.Context(), middleware.GetUserID(r.Context()))
	if result == nil {
		writeServiceError(w, service.ErrNoResult)
		return
	}
	writeJSON(w, http.StatusOK, ResultResponse{Result: result, Summary: h.scoring.Summarize(result)})
}
