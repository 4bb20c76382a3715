package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/auth-gateway/models"
	"google.golang.org/grpc"
)

type productClient struct {
	conn    grpc.ClientConnInterface
	timeout time.Duration
}

// NewProductClient returns a ProductClient calling the product service over
// conn. Every call is bounded by timeout.
func NewProductClient(conn grpc.ClientConnInterface, timeout time.Duration) ProductClient {
	return &productClient{conn: conn, timeout: timeout}
}

func (c *productClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp := &getAllCategoriesResponse{}
	if err := c.conn.Invoke(ctx, methodGetAllCategories, &getAllCategoriesRequest{}, resp); err != nil {
		return nil, mapRPCError(methodGetAllCategories, err)
	}

	categories := make([]models.Category, 0, len(resp.Categories))
	for _, cat := range resp.Categories {
		if cat == nil {
			continue
		}
		categories = append(categories, models.Category{CategoryID: cat.CategoryID, Name: cat.Name})
	}

	return categories, nil
}
