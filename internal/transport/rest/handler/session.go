package handler

import (
	"net/http"

	"chatfuture/internal/model"
	"chatfuture/internal/service"
	"chatfuture/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// SessionHandler handles the assessment session lifecycle and answer recording
type SessionHandler struct {
	sessions *service.SessionService
	answers  *service.AnswerService
	scoring  *service.ScoringService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService, answers *service.AnswerService, scoring *service.ScoringService) *SessionHandler {
	return &SessionHandler{sessions: sessions, answers: answers, scoring: scoring}
}

// Start handles POST /v1/session. Any previous session, result and report are discarded.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess := h.scoring.StartAssessment(r.Context(), middleware.GetUserID(r.Context()))
	writeJSON(w, http.StatusCreated, sess)
}

// Get handles GET /v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Current(r.Context(), middleware.GetUserID(r.Context()))
	if sess == nil {
		writeServiceError(w, service.ErrNoActiveSession)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// Delete handles DELETE /v1/session
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(r.Context(), middleware.GetUserID(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// Reset handles POST /v1/session/reset. The stored result is kept.
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Reset(r.Context(), middleware.GetUserID(r.Context()))
	writeJSON(w, http.StatusCreated, sess)
}

// Progress handles GET /v1/session/progress
func (h *SessionHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.sessions.Progress(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// SaveAnswer handles POST /v1/session/answers
func (h *SessionHandler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	var req model.AnswerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	sess, err := h.answers.SaveAnswer(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// CompleteInstrument handles POST /v1/session/instruments/{instrument}/complete
func (h *SessionHandler) CompleteInstrument(w http.ResponseWriter, r *http.Request) {
	id := model.InstrumentID(mux.Vars(r)["instrument"])
	progress, err := h.answers.CompleteInstrument(r.Context(), middleware.GetUserID(r.Context()), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// Complete handles POST /v1/session/complete
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if err := h.sessions.MarkCompleted(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}
	progress, err := h.sessions.Progress(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}
