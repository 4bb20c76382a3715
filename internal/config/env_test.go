// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"ENV_FILE",
	"APP_MODE", "APP_VERSION", "APP_LOG_LEVEL",
	"AUTH_TOKEN_SIGN_KEY", "AUTH_TOKEN_ISSUER",
	"SERVER_ADDRESS", "SERVER_ALLOWED_ORIGIN", "SERVER_COOKIE_DOMAIN", "SERVER_SHUTDOWN_TIMEOUT",
	"ADAPTER_USER_SERVICE_ADDRESS", "ADAPTER_PRODUCT_SERVICE_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_MODE":      "production",
		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "warn",

		"AUTH_TOKEN_SIGN_KEY": "jwt_secret",
		"AUTH_TOKEN_ISSUER":   "test_issuer",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_ALLOWED_ORIGIN":   "https://shop.example.com",
		"SERVER_COOKIE_DOMAIN":    "example.com",
		"SERVER_SHUTDOWN_TIMEOUT": "15s",

		"ADAPTER_USER_SERVICE_ADDRESS":    "users:50051",
		"ADAPTER_PRODUCT_SERVICE_ADDRESS": "products:50052",
		"ADAPTER_REQUEST_TIMEOUT":         "3s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "production", cfg.App.Mode)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)

	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://shop.example.com", cfg.Server.AllowedOrigin)
	assert.Equal(t, "example.com", cfg.Server.CookieDomain)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "users:50051", cfg.Adapter.UserServiceAddress)
	assert.Equal(t, "products:50052", cfg.Adapter.ProductServiceAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AUTH_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":      "localhost:8080",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Adapter.UserServiceAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv_LoadsMissingVariables(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_ADDRESS": ":7000"})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUTH_TOKEN_SIGN_KEY=from-file\nSERVER_ADDRESS=:9999\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("AUTH_TOKEN_SIGN_KEY") })

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "from-file", os.Getenv("AUTH_TOKEN_SIGN_KEY"))
	// already-set variables win over the file
	assert.Equal(t, ":7000", os.Getenv("SERVER_ADDRESS"))
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestDotEnvPath(t *testing.T) {
	setEnvVars(t, nil)
	assert.Equal(t, ".env", dotEnvPath())

	t.Setenv("ENV_FILE", "/etc/gateway.env")
	assert.Equal(t, "/etc/gateway.env", dotEnvPath())
}

// setEnvVars clears every variable the config reads and then sets vars.
// Previous values are restored when the test ends.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}
