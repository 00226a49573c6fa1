package earnings_get

import (
	"errors"
	"net/http"

	"pathport/internal/handlers/rest/converters"
	"pathport/internal/pkg/httpjson"
	"pathport/internal/pkg/requestcontext"
	"pathport/internal/service/parcel"
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

	earnings, err := h.service.Earnings(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrPermissionDenied):
			httpjson.WriteError(w, h.log, http.StatusForbidden, err)
		default:
			httpjson.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.ToEarningsDTO(earnings))
}
