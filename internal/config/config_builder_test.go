package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validRESTConfig returns the smallest config that passes validation.
func validRESTConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Adapter.DataURL = "https://example.supabase.co/rest/v1"
	cfg.Adapter.StorageURL = "https://example.supabase.co/storage/v1"
	cfg.Adapter.Bucket = "images"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without any source fails
// validation instead of returning a half-filled config.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.Nil(t, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validRESTConfig(),
		&StructuredConfig{Server: Server{HTTPAddress: ":9000"}},
		&StructuredConfig{Adapter: Adapter{Bucket: "photos"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "photos", cfg.Adapter.Bucket)
	assert.Equal(t, "https://example.supabase.co/rest/v1", cfg.Adapter.DataURL)
}

func TestBuild_APIKeyFallsBackToServiceRoleKey(t *testing.T) {
	base := validRESTConfig()
	base.ServiceRoleKey = "legacy-key"

	b := newConfigBuilder()
	b.configs = append(b.configs, base)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.Adapter.APIKey)
}

func TestBuild_ExplicitAPIKeyBeatsServiceRoleKey(t *testing.T) {
	base := validRESTConfig()
	base.ServiceRoleKey = "legacy-key"
	base.Adapter.APIKey = "explicit-key"

	b := newConfigBuilder()
	b.configs = append(b.configs, base)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "explicit-key", cfg.Adapter.APIKey)
}

// TestBuild_MissingAPIKeyIsAllowed verifies that startup does not depend on
// the key being configured.
func TestBuild_MissingAPIKeyIsAllowed(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validRESTConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.APIKey)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid rest config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing data url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.DataURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "rest backend without bucket",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.Bucket = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "gcs backend without bucket",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Backend = StorageBackendGCS
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "gcs backend with bucket",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Backend = StorageBackendGCS
				cfg.Storage.GCS.Bucket = "gcs-images"
				cfg.Adapter.StorageURL = ""
			},
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Backend = "s3" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "non-positive upload cap",
			mutate:  func(cfg *StructuredConfig) { cfg.App.MaxUploadBytes = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "sign key without duration",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.TokenSignKey = "secret"
				cfg.App.TokenDuration = 0
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validRESTConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaultConfig(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	require.Len(t, b.configs, 1)
	assert.Equal(t, defaultConfig(), b.configs[0])
	assert.Equal(t, ":8000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, int64(10<<20), b.configs[0].App.MaxUploadBytes)
	assert.Equal(t, StorageBackendREST, b.configs[0].Storage.Backend)
	assert.False(t, b.configs[0].App.CleanupOrphanedUploads)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_SeedsEnvironment(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("ADAPTER_BUCKET=from-dotenv\n"), 0o600))

	// t.Setenv registers a cleanup that restores the variable after the test.
	t.Setenv("ADAPTER_BUCKET", "")
	require.NoError(t, os.Unsetenv("ADAPTER_BUCKET"))

	b := newConfigBuilder().withDotEnv(p).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].Adapter.Bucket)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("ADAPTER_BUCKET=from-dotenv\n"), 0o600))
	t.Setenv("ADAPTER_BUCKET", "from-env")

	b := newConfigBuilder().withDotEnv(p).withEnv()
	require.NoError(t, b.err)
	assert.Equal(t, "from-env", b.configs[0].Adapter.Bucket)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ParsesEnvironment(t *testing.T) {
	t.Setenv("ADAPTER_DATA_URL", "https://env.example/rest/v1")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://env.example/rest/v1", b.configs[0].Adapter.DataURL)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_MAX_UPLOAD_BYTES", "lots")

	b := newConfigBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastNonEmptyPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"adapter": map[string]any{"bucket": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"adapter": map[string]any{"bucket": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
		&StructuredConfig{},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "second", b.configs[3].Adapter.Bucket)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "does-not-exist.json"})
	b.withJSON()

	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "error reading a json file")
}

// TestBuild_JSONOverridesEnvironment runs defaults, env and JSON through the
// builder and checks the final merge order.
func TestBuild_JSONOverridesEnvironment(t *testing.T) {
	t.Setenv("ADAPTER_DATA_URL", "https://env.example/rest/v1")
	t.Setenv("ADAPTER_STORAGE_URL", "https://env.example/storage/v1")
	t.Setenv("ADAPTER_BUCKET", "env-bucket")
	t.Setenv("ADAPTER_API_KEY", "env-key")

	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"bucket": "json-bucket"},
		"server":  map[string]any{"request_timeout": "5s"},
	})
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().withDefaults().withEnv().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "json-bucket", cfg.Adapter.Bucket)
	assert.Equal(t, "env-key", cfg.Adapter.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, ":8000", cfg.Server.HTTPAddress)
}

// ── Redacted ──────────────────────────────────────────────────────────────────

func TestRedacted_MasksSecrets(t *testing.T) {
	cfg := validRESTConfig()
	cfg.Adapter.APIKey = "service-key"
	cfg.ServiceRoleKey = "legacy-key"
	cfg.App.TokenSignKey = "jwt-secret"

	r := cfg.Redacted()

	assert.Equal(t, "***", r.Adapter.APIKey)
	assert.Equal(t, "***", r.ServiceRoleKey)
	assert.Equal(t, "***", r.App.TokenSignKey)
	assert.Equal(t, "service-key", cfg.Adapter.APIKey)
	assert.Equal(t, cfg.Adapter.DataURL, r.Adapter.DataURL)
}

func TestRedacted_LeavesEmptySecretsEmpty(t *testing.T) {
	r := validRESTConfig().Redacted()
	assert.Empty(t, r.Adapter.APIKey)
}
