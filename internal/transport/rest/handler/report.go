package handler

import (
	"net/http"

	"chatfuture/internal/service"
	"chatfuture/internal/transport/rest/middleware"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Get handles GET /v1/reports
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.reportSvc.Get(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if record == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "not_started"})
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Trigger handles POST /v1/reports. Generation runs in the background;
// completion is pushed over the WebSocket and visible via GET.
func (h *ReportHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	record, err := h.reportSvc.Trigger(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, record)
}
