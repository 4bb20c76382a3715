package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/auth-gateway/internal/adapter"
	"github.com/MKhiriev/auth-gateway/internal/app"
	"github.com/MKhiriev/auth-gateway/internal/service"
	"github.com/MKhiriev/auth-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithCatalog(t *testing.T, listFn func(ctx context.Context) ([]models.Category, error)) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{CatalogService: &mockCatalogService{listFn: listFn}})
}

func TestGetCategories_Success(t *testing.T) {
	h := newHandlerWithCatalog(t, func(context.Context) ([]models.Category, error) {
		return []models.Category{
			{CategoryID: "c1", Name: "Phones"},
			{CategoryID: "c2", Name: "Laptops"},
		}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/categories", nil)
	rec := httptest.NewRecorder()

	h.getCategories(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[{"categoryId":"c1","name":"Phones"},{"categoryId":"c2","name":"Laptops"}]}`, rec.Body.String())
}

func TestGetCategories_EmptyListIsArray(t *testing.T) {
	h := newHandlerWithCatalog(t, func(context.Context) ([]models.Category, error) {
		return []models.Category{}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/categories", nil)
	rec := httptest.NewRecorder()

	h.getCategories(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestGetCategories_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "backend unavailable",
			err:      fmt.Errorf("%w: %w", service.ErrBackendFailure, &adapter.ServiceError{Code: adapter.CodeUnavailable, Retryable: true}),
			wantCode: "unavailable",
		},
		{
			name:     "backend timeout",
			err:      fmt.Errorf("%w: %w", service.ErrBackendFailure, &adapter.ServiceError{Code: adapter.CodeTimeout, Retryable: true}),
			wantCode: "timeout",
		},
		{
			name:     "no backend code",
			err:      service.ErrBackendFailure,
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithCatalog(t, func(context.Context) ([]models.Category, error) {
				return nil, tt.err
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/categories", nil)
			rec := httptest.NewRecorder()

			h.getCategories(rec, req)

			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var body models.CategoriesErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, app.MsgCategoriesFailed, body.Message)
			assert.Equal(t, tt.wantCode, body.Code)
			if tt.wantCode == "" {
				assert.NotContains(t, rec.Body.String(), `"code"`)
			}
		})
	}
}
