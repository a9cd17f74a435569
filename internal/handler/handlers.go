package handler

import (
	"github.com/MKhiriev/roya-gateway/internal/config"
	"github.com/MKhiriev/roya-gateway/internal/handler/http"
	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the inbound handlers. remoteConfigured tells the HTTP
// handler whether the remote API key is available.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, remoteConfigured bool, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, http.Options{
			RemoteConfigured: remoteConfigured,
			MaxUploadBytes:   cfg.App.MaxUploadBytes,
			LoginViewPath:    cfg.App.LoginViewPath,
			RequestTimeout:   cfg.Server.RequestTimeout,
		}, logger),
	}, nil
}
