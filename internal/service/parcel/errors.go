package parcel

import (
	"errors"
	"fmt"

	"pathport/internal/pkg/access"
)

var (
	ErrValidation            = errors.New("validation error")
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidTitle          = fmt.Errorf("%w: invalid title", ErrValidation)
	ErrInvalidLocation       = fmt.Errorf("%w: pickup and delivery locations are required", ErrValidation)
	ErrInvalidReceiver       = fmt.Errorf("%w: invalid receiver", ErrValidation)
	ErrInvalidWeight         = fmt.Errorf("%w: weight must be greater than 0 and at most 1000 kg", ErrValidation)
	ErrInvalidSize           = fmt.Errorf("%w: invalid size", ErrValidation)
	ErrInvalidUrgency        = fmt.Errorf("%w: invalid urgency", ErrValidation)
	ErrInvalidRewardPoints   = fmt.Errorf("%w: reward points must be between 0 and 10000", ErrValidation)
	ErrInvalidOrderID        = fmt.Errorf("%w: invalid order id", ErrValidation)
	ErrInvalidStatusFilter   = fmt.Errorf("%w: invalid status filter", ErrValidation)

	ErrPermissionDenied   = access.ErrPermissionDenied
	ErrNotParcelOwner     = fmt.Errorf("parcel belongs to another sender: %w", access.ErrPermissionDenied)
	ErrNotAssignedPartner = fmt.Errorf("parcel is assigned to another partner: %w", access.ErrPermissionDenied)
	ErrPartnerNotAllowed  = fmt.Errorf("partner account is not active: %w", access.ErrPermissionDenied)

	ErrParcelNotFound      = errors.New("parcel not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrCodeMismatch        = errors.New("verification code does not match")
	ErrAlreadyClaimed      = errors.New("parcel already claimed")
	ErrDuplicateIdentifier = errors.New("could not allocate a unique order id")

	// ошибки уровня репозитория, наружу сервиса не выходят
	ErrOrderIDConflict    = errors.New("order id already exists")
	ErrTransitionRejected = errors.New("conditional transition matched no rows")
)
