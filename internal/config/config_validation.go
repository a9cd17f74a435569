// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The API key is intentionally not required: without it the server still
// starts and every endpoint that talks to the remote service answers with an
// explicit "not configured" error.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.DataURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Storage.Backend {
	case StorageBackendREST:
		if cfg.Adapter.StorageURL == "" || cfg.Adapter.Bucket == "" {
			return fmt.Errorf("%w: storage url and bucket are required", ErrInvalidStorageConfigs)
		}
	case StorageBackendGCS:
		if cfg.Storage.GCS.Bucket == "" {
			return fmt.Errorf("%w: gcs bucket is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.App.MaxUploadBytes <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenSignKey != "" && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		return fmt.Errorf("%w: token issuer and duration are required with a sign key", ErrInvalidAppConfigs)
	}

	return nil
}
