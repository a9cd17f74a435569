// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_LEVEL":                "info",
		"APP_TOKEN_SIGN_KEY":           "jwt_secret",
		"APP_TOKEN_ISSUER":             "issuer",
		"APP_TOKEN_DURATION":           "2h",
		"APP_MAX_UPLOAD_BYTES":         "4096",
		"APP_CLEANUP_ORPHANED_UPLOADS": "true",
		"APP_LOGIN_VIEW_PATH":          "/view",

		"SERVER_ADDRESS":         ":9000",
		"SERVER_REQUEST_TIMEOUT": "15s",

		"ADAPTER_DATA_URL":        "https://example.supabase.co/rest/v1",
		"ADAPTER_STORAGE_URL":     "https://example.supabase.co/storage/v1",
		"ADAPTER_BUCKET":          "images",
		"ADAPTER_API_KEY":         "service-key",
		"ADAPTER_REQUEST_TIMEOUT": "3s",

		"STORAGE_BACKEND":              "gcs",
		"STORAGE_GCS_BUCKET":           "gcs-images",
		"STORAGE_GCS_CREDENTIALS_FILE": "/creds.json",

		"SUPABASE_SERVICE_ROLE_KEY": "legacy-key",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, int64(4096), cfg.App.MaxUploadBytes)
	assert.True(t, cfg.App.CleanupOrphanedUploads)
	assert.Equal(t, "/view", cfg.App.LoginViewPath)

	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "https://example.supabase.co/rest/v1", cfg.Adapter.DataURL)
	assert.Equal(t, "https://example.supabase.co/storage/v1", cfg.Adapter.StorageURL)
	assert.Equal(t, "images", cfg.Adapter.Bucket)
	assert.Equal(t, "service-key", cfg.Adapter.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "gcs", cfg.Storage.Backend)
	assert.Equal(t, "gcs-images", cfg.Storage.GCS.Bucket)
	assert.Equal(t, "/creds.json", cfg.Storage.GCS.CredentialsFile)

	assert.Equal(t, "legacy-key", cfg.ServiceRoleKey)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	t.Setenv("APP_CLEANUP_ORPHANED_UPLOADS", "maybe")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}
