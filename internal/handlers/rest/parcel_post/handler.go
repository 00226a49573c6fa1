package parcel_post

import (
	"errors"
	"net/http"

	"pathport/internal/entities"
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

	var parcelCreateDTO dto.ParcelCreate
	err := httpjson.Decode(r, &parcelCreateDTO)
	if err != nil {
		httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		return
	}

	parcelEntity, err := h.service.CreateParcel(r.Context(), actor, toParcelModify(&parcelCreateDTO))
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrValidation):
			httpjson.WriteError(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, parcel.ErrPermissionDenied):
			httpjson.WriteError(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, parcel.ErrDuplicateIdentifier):
			w.Header().Set("Retry-After", "1")
			httpjson.WriteError(w, h.log, http.StatusServiceUnavailable, err)
		default:
			httpjson.WriteError(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	httpjson.Write(w, h.log, http.StatusCreated, converters.ToParcelDTO(parcelEntity))
}

func toParcelModify(parcelCreateDTO *dto.ParcelCreate) entities.ParcelModify {
	parcelModify := entities.ParcelModify{
		Title:            &parcelCreateDTO.Title,
		Description:      parcelCreateDTO.Description,
		PickupLocation:   &parcelCreateDTO.PickupLocation,
		DeliveryLocation: &parcelCreateDTO.DeliveryLocation,
		ReceiverName:     &parcelCreateDTO.ReceiverName,
		ReceiverPhone:    &parcelCreateDTO.ReceiverPhone,
		ReceiverEmail:    parcelCreateDTO.ReceiverEmail,
		Weight:           &parcelCreateDTO.Weight,
		RewardPoints:     parcelCreateDTO.RewardPoints,
	}
	if parcelCreateDTO.Size != nil {
		size := entities.ParcelSize(*parcelCreateDTO.Size)
		parcelModify.Size = &size
	}
	if parcelCreateDTO.Urgency != nil {
		urgency := entities.ParcelUrgency(*parcelCreateDTO.Urgency)
		parcelModify.Urgency = &urgency
	}
	return parcelModify
}
