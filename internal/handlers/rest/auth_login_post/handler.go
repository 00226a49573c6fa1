package auth_login_post

import (
	"errors"
	"net/http"

	"pathport/internal/generated/dto"
	"pathport/internal/handlers/rest/converters"
	"pathport/internal/pkg/httpjson"
	"pathport/internal/service/auth"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginRequest
	err := httpjson.Decode(r, &loginDTO)
	if err != nil {
		httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	session, err := h.service.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			httpjson.WriteError(w, h.log, http.StatusUnauthorized, auth.ErrInvalidCredentials)
		case errors.Is(err, auth.ErrAccountSuspended):
			httpjson.WriteError(w, h.log, http.StatusForbidden, auth.ErrAccountSuspended)
		default:
			httpjson.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      converters.ToUserDTO(&session.User),
	})
}
