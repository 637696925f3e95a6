package handler

import (
	"net/http"

	"chatfuture/internal/catalog"
	"chatfuture/internal/model"

	"github.com/gorilla/mux"
)

// CatalogHandler serves the read-only instrument catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// InstrumentSummary is an instrument without its questions
type InstrumentSummary struct {
	ID            model.InstrumentID `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Dimensions    []model.Dimension  `json:"dimensions"`
	QuestionCount int                `json:"questionCount"`
}

// List handles GET /v1/instruments
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	out := []InstrumentSummary{}
	for _, id := range h.catalog.InstrumentIDs() {
		inst, err := h.catalog.Instrument(id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		out = append(out, InstrumentSummary{
			ID:            inst.ID,
			Name:          inst.Name,
			Description:   inst.Description,
			Dimensions:    inst.Dimensions,
			QuestionCount: len(inst.Questions),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"instruments":    out,
		"totalQuestions": h.catalog.AllTotalQuestions(),
	})
}

// Questions handles GET /v1/instruments/{instrument}/questions
func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	id := model.InstrumentID(mux.Vars(r)["instrument"])
	questions, err := h.catalog.Questions(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"instrumentId": id,
		"questions":    questions,
	})
}
