package handler

import (
	"net/http"

	"chatfuture/internal/model"
	"chatfuture/internal/service"
	"chatfuture/internal/transport/rest/middleware"
)

// ProfileHandler handles the basic info form
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// BasicInfoResponse adds the derived fields the results page shows
type BasicInfoResponse struct {
	*model.BasicInfo
	AgeBounds            model.AgeBounds `json:"ageBounds"`
	OccupationCategories []string        `json:"occupationCategories"`
}

func newBasicInfoResponse(info *model.BasicInfo) BasicInfoResponse {
	return BasicInfoResponse{
		BasicInfo:            info,
		AgeBounds:            model.AgeRangeBounds(info.AgeRange),
		OccupationCategories: model.OccupationCategories(info.Occupation),
	}
}

// Put handles PUT /v1/profile/basic-info
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req model.BasicInfo
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_basic_info", err.Error())
		return
	}

	info, err := h.profiles.SaveBasicInfo(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newBasicInfoResponse(info))
}

// Get handles GET /v1/profile/basic-info
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.profiles.BasicInfo(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if info == nil {
		writeError(w, http.StatusNotFound, "no_basic_info", "basic info not completed")
		return
	}
	writeJSON(w, http.StatusOK, newBasicInfoResponse(info))
}

// Delete handles DELETE /v1/profile/basic-info
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.ClearBasicInfo(r.Context(), middleware.GetUserID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
