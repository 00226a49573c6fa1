package parcel_deliver_post

import (
	"errors"
	"net/http"

	"pathport/internal/generated/dto"
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

	var verificationDTO dto.CodeVerification
	err := httpjson.Decode(r, &verificationDTO)
	if err != nil {
		httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	parcelEntity, err := h.service.VerifyDelivery(r.Context(), actor, verificationDTO.OrderID, verificationDTO.Code)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrValidation):
			httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, parcel.ErrParcelNotFound):
			httpjson.WriteError(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, parcel.ErrPermissionDenied):
			httpjson.WriteError(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, parcel.ErrInvalidTransition):
			httpjson.WriteError(w, h.log, http.StatusConflict, err)
		case errors.Is(err, parcel.ErrCodeMismatch):
			httpjson.WriteError(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			httpjson.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusOK, converters.ToParcelDTO(parcelEntity))
}
