// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Object storage backends accepted in [Storage.Backend].
const (
	// StorageBackendREST stores uploads through the remote storage REST API.
	StorageBackendREST = "rest"
	// StorageBackendGCS stores uploads in a Google Cloud Storage bucket.
	StorageBackendGCS = "gcs"
)

// StructuredConfig is the top-level configuration container for the
// roya-gateway application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables (optionally seeded
// from a .env file), command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: logging, session tokens and
	// upload behaviour.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote data API and storage API endpoints together
	// with the API key sent on every outbound call.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects and configures the object store used for uploads.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ServiceRoleKey is the variable name used by earlier deployments for the
	// API key. It is only consulted when Adapter.APIKey is empty.
	// Env: SUPABASE_SERVICE_ROLE_KEY
	ServiceRoleKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the secret used to sign session tokens issued on login.
	// When empty no token is issued.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// MaxUploadBytes caps the size of a POST /upload request body.
	// Env: APP_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`

	// CleanupOrphanedUploads enables a compensating delete of the stored
	// object when the photo metadata insert fails.
	// Env: APP_CLEANUP_ORPHANED_UPLOADS
	CleanupOrphanedUploads bool `env:"CLEANUP_ORPHANED_UPLOADS"`

	// LoginViewPath is where GET / redirects to.
	// Env: APP_LOGIN_VIEW_PATH
	LoginViewPath string `env:"LOGIN_VIEW_PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000" or ":8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote service endpoints.
type Adapter struct {
	// DataURL is the base URL of the REST data API
	// (e.g. "https://<project>.supabase.co/rest/v1").
	// Env: ADAPTER_DATA_URL
	DataURL string `env:"DATA_URL"`

	// StorageURL is the base URL of the object storage API
	// (e.g. "https://<project>.supabase.co/storage/v1").
	// Env: ADAPTER_STORAGE_URL
	StorageURL string `env:"STORAGE_URL"`

	// Bucket is the storage bucket uploads are written to.
	// Env: ADAPTER_BUCKET
	Bucket string `env:"BUCKET"`

	// APIKey is sent as the "apikey" and bearer "Authorization" headers on
	// every outbound call. It must never be returned to inbound clients.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds every outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage selects the object store backend.
type Storage struct {
	// Backend is either [StorageBackendREST] or [StorageBackendGCS].
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// GCS configures the Google Cloud Storage backend.
	GCS GCS `envPrefix:"GCS_"`
}

// GCS holds Google Cloud Storage settings.
type GCS struct {
	// Bucket is the GCS bucket name.
	// Env: STORAGE_GCS_BUCKET
	Bucket string `env:"BUCKET"`

	// CredentialsFile is an optional service account JSON path. When empty,
	// Application Default Credentials are used.
	// Env: STORAGE_GCS_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a ./.env file, when present, seeds variables
//     that are not already set)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags().
		withJSON().
		build()
}

// Redacted returns a copy of cfg that is safe to log: secrets are masked.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	cfg.Adapter.APIKey = mask(cfg.Adapter.APIKey)
	cfg.ServiceRoleKey = mask(cfg.ServiceRoleKey)
	cfg.App.TokenSignKey = mask(cfg.App.TokenSignKey)
	return cfg
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}
