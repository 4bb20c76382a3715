// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	defaultMode                  = ModeDevelopment
	defaultLogLevel              = "info"
	defaultTokenIssuer           = "auth-gateway"
	defaultHTTPAddress           = ":5001"
	defaultShutdownTimeout       = 10 * time.Second
	defaultUserServiceAddress    = "localhost:50051"
	defaultProductServiceAddress = "localhost:50052"
	defaultRequestTimeout        = 5 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.Mode, defaultMode)
	setDefault(&cfg.App.LogLevel, defaultLogLevel)
	setDefault(&cfg.Auth.TokenIssuer, defaultTokenIssuer)
	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)
	setDefault(&cfg.Server.ShutdownTimeout, defaultShutdownTimeout)
	setDefault(&cfg.Adapter.UserServiceAddress, defaultUserServiceAddress)
	setDefault(&cfg.Adapter.ProductServiceAddress, defaultProductServiceAddress)
	setDefault(&cfg.Adapter.RequestTimeout, defaultRequestTimeout)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	switch cfg.App.Mode {
	case ModeDevelopment, ModeProduction, ModeTest:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, cfg.App.Mode)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.UserServiceAddress == "" || cfg.Adapter.ProductServiceAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
