package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/roya-gateway/internal/app"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/service"
	"github.com/MKhiriev/roya-gateway/internal/utils"
	"github.com/MKhiriev/roya-gateway/models"
)

// register creates an account. It answers 200, the only success status the
// mobile client accepts.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg(app.MsgUserRegistered)
	utils.WriteJSON(w, models.UserResponse{Message: app.MsgUserRegistered, User: user}, http.StatusOK)
}

// login authenticates the user. When session tokens are enabled the token is
// returned in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	switch {
	case errors.Is(err, service.ErrTokenSigningDisabled):
	case err != nil:
		writeError(w, r, err)
		return
	default:
		w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.UserResponse{Message: app.MsgLoginSuccessful, User: user}, http.StatusOK)
}
