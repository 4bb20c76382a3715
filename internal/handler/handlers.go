package handler

import (
	"github.com/MKhiriev/auth-gateway/internal/config"
	"github.com/MKhiriev/auth-gateway/internal/handler/http"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/metrics"
	"github.com/MKhiriev/auth-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, m, logger),
	}, nil
}
