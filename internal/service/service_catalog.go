package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/auth-gateway/internal/adapter"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/models"
)

type catalogService struct {
	products adapter.ProductClient

	logger *logger.Logger
}

func NewCatalogService(products adapter.ProductClient, logger *logger.Logger) CatalogService {
	return &catalogService{
		products: products,
		logger:   logger,
	}
}

// ListCategories proxies the product service. The returned error wraps
// ErrBackendFailure and the adapter's *ServiceError.
func (c *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.products.ListCategories(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error fetching categories")
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}

	if categories == nil {
		categories = []models.Category{}
	}

	return categories, nil
}
