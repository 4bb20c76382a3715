package http

import (
	"net/http"

	"github.com/MKhiriev/auth-gateway/internal/adapter"
	"github.com/MKhiriev/auth-gateway/internal/app"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/models"
)

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CatalogService.ListCategories(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error fetching categories")
		writeJSON(w, r, models.CategoriesErrorResponse{
			Success: false,
			Message: app.MsgCategoriesFailed,
			Code:    string(adapter.CodeOf(err)),
		}, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, models.CategoriesResponse{Success: true, Data: categories}, http.StatusOK)
}
