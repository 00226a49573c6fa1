package activity_get

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"pathport/internal/handlers/rest/converters"
	"pathport/internal/pkg/access"
	"pathport/internal/pkg/httpjson"
	"pathport/internal/pkg/requestcontext"
	"pathport/internal/service/activity"
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

	// 0 - лимит по умолчанию
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpjson.WriteError(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid limit %q: %w", raw, activity.ErrInvalidLimit))
			return
		}
		limit = parsed
	}

	entries, err := h.service.Recent(r.Context(), actor, limit)
	if err != nil {
		switch {
		case errors.Is(err, activity.ErrValidation):
			httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, access.ErrPermissionDenied):
			httpjson.WriteError(w, h.log, http.StatusForbidden, err)
		default:
			httpjson.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.ToActivityDTOs(entries))
}
