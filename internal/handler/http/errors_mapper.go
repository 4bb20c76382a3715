package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/auth-gateway/internal/app"
	"github.com/MKhiriev/auth-gateway/internal/service"
	"github.com/MKhiriev/auth-gateway/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrMissingField:    http.StatusBadRequest,
	validators.ErrInvalidEmail:    http.StatusBadRequest,
	validators.ErrInvalidPhone:    http.StatusBadRequest,
	validators.ErrWeakPassword:    http.StatusBadRequest,
	validators.ErrSuspiciousInput: http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,

	service.ErrBackendFailure:        http.StatusInternalServerError,
	service.ErrHashingFailed:         http.StatusInternalServerError,
	service.ErrCredentialCheckFailed: http.StatusInternalServerError,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err. Validation
// messages are passed through; everything that is not the caller's fault
// collapses into fallback.
func messageFromError(err error, fallback string) string {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}

	if errors.Is(err, service.ErrInvalidCredentials) {
		return app.MsgInvalidCredentials
	}

	return fallback
}
