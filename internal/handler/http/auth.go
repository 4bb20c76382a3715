package http

import (
	"net/http"

	"github.com/MKhiriev/auth-gateway/internal/app"
	"github.com/MKhiriev/auth-gateway/internal/logger"
	"github.com/MKhiriev/auth-gateway/internal/utils"
	"github.com/MKhiriev/auth-gateway/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.RegistrationInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, app.MsgInvalidRequestBody)
		return
	}

	userName, err := h.services.AuthService.Register(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	writeJSON(w, r, models.RegisterResponse{
		Message: app.MsgRegistrationSuccessful,
		User:    models.RegisterUser{UserName: userName},
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.LoginInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, app.MsgInvalidRequestBody)
		return
	}

	session, err := h.services.AuthService.Login(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	http.SetCookie(w, h.cookies.sessionCookie(session.Token))
	writeJSON(w, r, models.LoginResponse{
		Message: app.MsgLoginSuccessful,
		User: models.LoginUser{
			Email:    session.Email,
			UserName: session.UserName,
		},
	}, http.StatusOK)
}
