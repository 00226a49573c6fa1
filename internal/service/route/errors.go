package route

import (
	"errors"
	"fmt"

	"pathport/internal/pkg/access"
)

var (
	ErrValidation            = errors.New("validation error")
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidName           = fmt.Errorf("%w: invalid route name", ErrValidation)
	ErrInvalidLocation       = fmt.Errorf("%w: from and to locations are required", ErrValidation)
	ErrInvalidDepartureTime  = fmt.Errorf("%w: departure time must be HH:MM", ErrValidation)
	ErrInvalidFrequency      = fmt.Errorf("%w: invalid frequency", ErrValidation)
	ErrInvalidCapacity       = fmt.Errorf("%w: capacity must be positive", ErrValidation)
	ErrInvalidTransport      = fmt.Errorf("%w: invalid transport mode", ErrValidation)

	ErrPermissionDenied = access.ErrPermissionDenied
	ErrNotRouteOwner    = fmt.Errorf("route belongs to another partner: %w", access.ErrPermissionDenied)

	ErrRouteNotFound = errors.New("route not found")
)
