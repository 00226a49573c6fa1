package parcel

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_transitions_total",
			Help: "Parcel lifecycle transitions by target status and outcome",
		},
		[]string{"to", "outcome"},
	)

	CodeVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcel_code_verifications_total",
			Help: "Pickup/delivery code presentations by outcome",
		},
		[]string{"gate", "outcome"},
	)

	OrderIDCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parcel_order_id_collisions_total",
			Help: "Order id unique violations that triggered regeneration",
		},
	)

	ReleasedParcelsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parcel_released_total",
			Help: "Parcels returned to the pending pool after partner suspension or removal",
		},
	)
)

func observeTransition(to string, err error) {
	TransitionsTotal.WithLabelValues(to, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrAlreadyClaimed):
		return "already_claimed"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrCodeMismatch):
		return "code_mismatch"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrParcelNotFound):
		return "not_found"
	default:
		return "error"
	}
}
