package service

import (
	"fmt"

	"github.com/MKhiriev/auth-gateway/internal/adapter"
	"github.com/MKhiriev/auth-gateway/internal/config"
	"github.com/MKhiriev/auth-gateway/internal/crypto"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/metrics"
	"github.com/MKhiriev/auth-gateway/internal/validators"
	"github.com/MKhiriev/auth-gateway/models"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(clients *adapter.Clients, cfg config.StructuredConfig, build models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenIssuer(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(
			validators.NewInputSanitizer(),
			crypto.NewPasswordHasher(),
			tokens,
			clients.User,
			m,
			logger,
		),
		CatalogService: NewCatalogService(clients.Product, logger),
		AppInfoService: appInfo,
	}, nil
}
