package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/roya-gateway/internal/adapter"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/service"
	"github.com/MKhiriev/roya-gateway/internal/store"
	"github.com/MKhiriev/roya-gateway/internal/utils"
	"github.com/MKhiriev/roya-gateway/internal/validators"
)

// errorStatuses is matched in order; the first sentinel found in the chain
// decides the status.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidUserID, http.StatusBadRequest},
	{ErrInvalidMultipart, http.StatusBadRequest},
	{ErrUploadTooLarge, http.StatusRequestEntityTooLarge},

	{validators.ErrInvalidRequest, http.StatusBadRequest},
	{validators.ErrPasswordMismatch, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrTokenSubjectMismatch, http.StatusForbidden},
	{service.ErrNoFieldsToUpdate, http.StatusBadRequest},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrNoPhotosFound, http.StatusNotFound},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrInvalidObjectKey, http.StatusBadRequest},
	{store.ErrUserNotReturned, http.StatusBadGateway},

	{adapter.ErrNotConfigured, http.StatusInternalServerError},
	{adapter.ErrUnavailable, http.StatusBadGateway},
	{adapter.ErrDecode, http.StatusBadGateway},
}

// statusFromError returns the status for err and the sentinel it matched.
// Unknown errors map to 500 with a nil sentinel.
func statusFromError(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError renders err as {"detail": ...}.
//
// Upstream failures keep the upstream status and body. Validation failures
// list the offending fields. Everything else uses the message of the matched
// sentinel, so internal details and secrets never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var upstream *adapter.UpstreamError
	if errors.As(err, &upstream) {
		log.Warn().Err(err).Int("status", upstream.StatusCode).Msg("upstream error")
		utils.WriteDetail(w, upstream.Detail(), upstream.StatusCode)
		return
	}

	status, target := statusFromError(err)

	detail := http.StatusText(status)
	var verr *validators.ValidationError
	switch {
	case errors.As(err, &verr):
		detail = verr.Error()
	case target != nil:
		detail = target.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteDetail(w, detail, status)
}
