package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Any of them is
// fatal at startup.
var (
	// ErrMissingTokenSignKey indicates that no session token signing key
	// was configured.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidMode indicates an unknown application mode.
	ErrInvalidMode = errors.New("invalid application mode")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, a negative shutdown timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid backend adapter settings
	// (for example, a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
