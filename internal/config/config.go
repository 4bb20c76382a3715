// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Application modes accepted in App.Mode.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeTest        = "test"
)

// StructuredConfig is the top-level configuration container for the auth
// gateway. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: run mode, version and log level.
	App App `envPrefix:"APP_"`

	// Auth holds the session token settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds the inbound HTTP listener, CORS and cookie settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the addresses and call timeout of the backend RPC
	// services.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Mode selects production or development behaviour. In production the
	// session cookie is Secure and SameSite=Strict.
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// IsProduction reports whether the gateway runs in production mode.
func (a App) IsProduction() bool {
	return a.Mode == ModeProduction
}

// Auth holds session token configuration.
type Auth struct {
	// TokenSignKey is the secret key used to sign session tokens (HS256).
	// Required: the gateway refuses to start without it.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Server holds network, CORS and cookie settings for the inbound HTTP
// transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. ":5001").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AllowedOrigin is the single browser origin allowed to call the API
	// with credentials (e.g. "https://shop.example.com").
	// Env: SERVER_ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// CookieDomain is the Domain attribute of the session cookie.
	// Empty means a host-only cookie.
	// Env: SERVER_COOKIE_DOMAIN
	CookieDomain string `env:"COOKIE_DOMAIN"`

	// ShutdownTimeout bounds how long in-flight requests may run after a
	// stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds configuration for the backend RPC services.
type Adapter struct {
	// UserServiceAddress is the gRPC target of the user service
	// (e.g. "localhost:50051").
	// Env: ADAPTER_USER_SERVICE_ADDRESS
	UserServiceAddress string `env:"USER_SERVICE_ADDRESS"`

	// ProductServiceAddress is the gRPC target of the product service
	// (e.g. "localhost:50052").
	// Env: ADAPTER_PRODUCT_SERVICE_ADDRESS
	ProductServiceAddress string `env:"PRODUCT_SERVICE_ADDRESS"`

	// RequestTimeout is the deadline applied to every single backend call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file (ENV_FILE, default ".env"; skipped when absent)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1–3)
//
// Defaults fill whatever is still empty. Returns an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvPath()).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
