package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/service"
	"github.com/go-chi/chi/v5"
)

// matchTokenSubject checks an optional bearer token on routes addressing
// {user_id}. Requests without an Authorization header pass unchanged, as do
// all requests while token signing is disabled. A token that fails
// verification is rejected with 401, and a valid token issued to another
// user with 403.
func (h *Handler) matchTokenSubject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Info().Err(err).Msg("malformed authorization header")
			writeError(w, r, service.ErrInvalidToken)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		switch {
		case errors.Is(err, service.ErrTokenSigningDisabled):
			next.ServeHTTP(w, r)
			return
		case err != nil:
			writeError(w, r, err)
			return
		}

		// an unparsable id is reported by the handler itself
		userID, err := parseUserID(chi.URLParam(r, "user_id"))
		if err == nil && userID != token.UserID {
			log.Warn().Int64("token_user_id", token.UserID).Int64("user_id", userID).Msg("token subject mismatch")
			writeError(w, r, service.ErrTokenSubjectMismatch)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
