package http

import (
	"github.com/MKhiriev/auth-gateway/internal/config"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/metrics"
	"github.com/MKhiriev/auth-gateway/internal/service"
)

type Handler struct {
	services *service.Services

	// cookies describes the session cookie attributes for the deployment mode.
	cookies cookieSettings

	allowedOrigin string

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		cookies:       newCookieSettings(cfg),
		allowedOrigin: cfg.Server.AllowedOrigin,
		metrics:       m,
		logger:        logger,
	}
}
