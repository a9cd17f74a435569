package http

import (
	"net/http"

	"github.com/MKhiriev/roya-gateway/internal/adapter"
)

// requireConfigured refuses requests with 500 while the remote API key is
// missing, before any body is read.
func (h *Handler) requireConfigured(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.opts.RemoteConfigured {
			writeError(w, r, adapter.ErrNotConfigured)
			return
		}
		next.ServeHTTP(w, r)
	})
}
