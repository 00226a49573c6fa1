package auth_logout_post

import (
	"net/http"

	"pathport/internal/pkg/httpjson"
	"pathport/internal/pkg/requestcontext"
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

	err := h.service.Logout(r.Context(), actor)
	if err != nil {
		httpjson.WriteError(w, h.log, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
