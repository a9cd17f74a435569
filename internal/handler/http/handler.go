package http

import (
	"time"

	"github.com/MKhiriev/roya-gateway/internal/logger"
	"github.com/MKhiriev/roya-gateway/internal/service"
)

// Options tune the handler.
type Options struct {
	// RemoteConfigured reports whether the remote API key is available.
	RemoteConfigured bool

	// MaxUploadBytes caps the body of POST /upload.
	MaxUploadBytes int64

	// LoginViewPath is the redirect target of GET /.
	LoginViewPath string

	// RequestTimeout bounds every request. Zero disables the limit.
	RequestTimeout time.Duration
}

type Handler struct {
	services *service.Services
	opts     Options

	logger *logger.Logger
}

func NewHandler(services *service.Services, opts Options, logger *logger.Logger) *Handler {
	if opts.LoginViewPath == "" {
		opts.LoginViewPath = defaultLoginViewPath
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}

	logger.Info().Bool("remote_configured", opts.RemoteConfigured).Msg("http handler created")
	return &Handler{
		services: services,
		opts:     opts,
		logger:   logger,
	}
}
