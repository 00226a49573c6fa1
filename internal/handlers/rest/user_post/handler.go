package user_post

import (
	"errors"
	"net/http"

	"pathport/internal/entities"
	"pathport/internal/generated/dto"
	"pathport/internal/handlers/rest/converters"
	"pathport/internal/pkg/httpjson"
	"pathport/internal/pkg/requestcontext"
	"pathport/internal/service/user"
)

// Handler создание аккаунта админом, в том числе других админов
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
	actor, ok := requestcontext.Actor(r.Context())
	if !ok {
		httpjson.WriteError(w, h.log, http.StatusUnauthorized, requestcontext.ErrNoActor)
		return
	}

	var userCreateDTO dto.RegisterRequest
	err := httpjson.Decode(r, &userCreateDTO)
	if err != nil {
		httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	role := entities.UserRole(userCreateDTO.Role)
	userModify := entities.UserModify{
		Name:     &userCreateDTO.Name,
		Email:    &userCreateDTO.Email,
		Phone:    &userCreateDTO.Phone,
		Password: &userCreateDTO.Password,
		Role:     &role,
	}

	userEntity, err := h.service.CreateUser(r.Context(), actor, userModify)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrValidation):
			httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, user.ErrPermissionDenied):
			httpjson.WriteError(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, user.ErrEmailTaken):
			httpjson.WriteError(w, h.log, http.StatusConflict, err)
		default:
			httpjson.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusCreated, converters.ToUserDTO(userEntity))
}
