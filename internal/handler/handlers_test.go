package handler

import (
	"testing"

	"github.com/MKhiriev/auth-gateway/internal/config"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer without dereferencing it, so nil is safe for
// construction-time tests.
func newTestServices() *service.Services {
	return nil
}

// TestNewHandlers_HTTPAddress verifies that the HTTP handler is initialised
// when an address is configured.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":5001"}}

	h, err := NewHandlers(newTestServices(), cfg, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that an empty server configuration is
// rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.StructuredConfig{}, nil, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
