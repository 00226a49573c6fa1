package auth_register_post

import (
	"errors"
	"net/http"

	"pathport/internal/entities"
	"pathport/internal/generated/dto"
	"pathport/internal/handlers/rest/converters"
	"pathport/internal/pkg/httpjson"
	"pathport/internal/service/user"
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
	var registerDTO dto.RegisterRequest
	err := httpjson.Decode(r, &registerDTO)
	if err != nil {
		httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	role := entities.UserRole(registerDTO.Role)
	userModify := entities.UserModify{
		Name:     &registerDTO.Name,
		Email:    &registerDTO.Email,
		Phone:    &registerDTO.Phone,
		Password: &registerDTO.Password,
		Role:     &role,
	}

	userEntity, err := h.service.Register(r.Context(), userModify)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrValidation):
			httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, user.ErrEmailTaken):
			httpjson.WriteError(w, h.log, http.StatusConflict, err)
		default:
			httpjson.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusCreated, converters.ToUserDTO(userEntity))
}
