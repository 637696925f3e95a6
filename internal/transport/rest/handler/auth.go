package handler

import (
	"net/http"

	"chatfuture/internal/model"
	"chatfuture/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authSvc    *service.AuthService
	allowIssue bool
}

// NewAuthHandler creates a new auth handler. Token issue is refused unless allowIssue is set.
func NewAuthHandler(authSvc *service.AuthService, allowIssue bool) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, allowIssue: allowIssue}
}

// IssueToken handles POST /v1/auth/token
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	if !h.allowIssue {
		writeError(w, http.StatusForbidden, "token_issue_disabled", "token issue is disabled")
		return
	}

	var req model.TokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	resp, err := h.authSvc.IssueUserToken(req.UserID, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
