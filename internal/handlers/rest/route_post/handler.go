package route_post

import (
	"errors"
	"net/http"

	"pathport/internal/entities"
	"pathport/internal/generated/dto"
	"pathport/internal/handlers/rest/converters"
	"pathport/internal/pkg/httpjson"
	"pathport/internal/pkg/requestcontext"
	"pathport/internal/service/route"
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
	actor, ok := requestcontext.Actor(r.Context())
	if !ok {
		httpjson.WriteError(w, h.log, http.StatusUnauthorized, requestcontext.ErrNoActor)
		return
	}

	var routeCreateDTO dto.RouteCreate
	err := httpjson.Decode(r, &routeCreateDTO)
	if err != nil {
		httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	routeModify := entities.RouteModify{
		Name:          &routeCreateDTO.Name,
		FromLocation:  &routeCreateDTO.FromLocation,
		ToLocation:    &routeCreateDTO.ToLocation,
		DepartureTime: &routeCreateDTO.DepartureTime,
		Capacity:      routeCreateDTO.Capacity,
	}
	if routeCreateDTO.Frequency != nil {
		frequency := entities.RouteFrequency(*routeCreateDTO.Frequency)
		routeModify.Frequency = &frequency
	}
	if routeCreateDTO.TransportMode != nil {
		transportMode := entities.TransportMode(*routeCreateDTO.TransportMode)
		routeModify.TransportMode = &transportMode
	}

	routeEntity, err := h.service.CreateRoute(r.Context(), actor, routeModify)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrValidation):
			httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, route.ErrPermissionDenied):
			httpjson.WriteError(w, h.log, http.StatusForbidden, err)
		default:
			httpjson.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusCreated, converters.ToRouteDTO(routeEntity))
}
