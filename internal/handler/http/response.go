package http

import (
	"net/http"

	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/utils"
	"github.com/MKhiriev/auth-gateway/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, models.ErrorResponse{Error: message}, status)
}

// writeServiceError logs err with the request logger and answers with the
// mapped status and client-safe message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	writeError(w, r, status, messageFromError(err, fallback))
}
