package config

import (
	"encoding/json"
	"errors"
	"os"
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

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_MissingSignKey verifies that an empty configuration fails with
// the sign key error: the gateway must not start without it.
func TestBuild_MissingSignKey(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrMissingTokenSignKey))
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	sentinel := errors.New("boom")
	b := newConfigBuilder()
	b.err = sentinel

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, sentinel))
}

// TestBuild_AppliesDefaults verifies that only the sign key is mandatory.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: Auth{TokenSignKey: "k"}})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, cfg.App.Mode)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "auth-gateway", cfg.Auth.TokenIssuer)
	assert.Equal(t, ":5001", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost:50051", cfg.Adapter.UserServiceAddress)
	assert.Equal(t, "localhost:50052", cfg.Adapter.ProductServiceAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.App.IsProduction())
}

// TestBuild_LaterSourceWins verifies merge priority: a non-zero field from a
// later source overrides an earlier one, zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "env"}, Server: Server{HTTPAddress: ":1000"}},
		&StructuredConfig{Auth: Auth{TokenSignKey: "flag"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag", cfg.Auth.TokenSignKey)
	assert.Equal(t, ":1000", cfg.Server.HTTPAddress)
}

// ── sources ───────────────────────────────────────────────────────────────────

// TestBuilder_EnvFlagsJSON runs the full chain: env sets the JSON path, flags
// override env, JSON overrides both.
func TestBuilder_EnvFlagsJSON(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"request_timeout": "7s"},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":              jsonPath,
		"AUTH_TOKEN_SIGN_KEY": "env_secret",
		"APP_MODE":            "production",
		"SERVER_ADDRESS":      ":6000",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", ":7000"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env_secret", cfg.Auth.TokenSignKey)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
}

// TestBuilder_WithJSON_MissingFile verifies that a configured but missing
// JSON file is an error.
func TestBuilder_WithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestBuilder_WithFlags_Invalid verifies that bad flags abort the build.
func TestBuilder_WithFlags_Invalid(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-a", "nohost"}).build()
	assert.Error(t, err)
}
