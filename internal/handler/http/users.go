package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/roya-gateway/internal/app"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/utils"
	"github.com/MKhiriev/roya-gateway/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := parseUserID(chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Message: app.MsgUserUpdated, User: user}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := parseUserID(chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.DeleteUserRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	deleted, err := h.services.UserService.DeleteUser(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", userID).Int("rows", len(deleted)).Msg("user deleted")
	utils.WriteJSON(w, models.DeleteUserResponse{Message: app.MsgUserDeleted, Deleted: deleted}, http.StatusOK)
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidUserID
	}
	return id, nil
}
