package user

import (
	"errors"
	"fmt"

	"pathport/internal/pkg/access"
)

var (
	ErrValidation            = errors.New("validation error")
	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidName           = fmt.Errorf("%w: invalid name", ErrValidation)
	ErrInvalidEmail          = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrInvalidPhone          = fmt.Errorf("%w: invalid phone", ErrValidation)
	ErrInvalidPassword       = fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	ErrInvalidRole           = fmt.Errorf("%w: invalid role", ErrValidation)
	ErrInvalidStatus         = fmt.Errorf("%w: invalid account status", ErrValidation)

	ErrPermissionDenied  = access.ErrPermissionDenied
	ErrCannotModifyAdmin = fmt.Errorf("admin accounts cannot be suspended or deleted: %w", access.ErrPermissionDenied)
	ErrCannotDeleteSelf  = fmt.Errorf("cannot delete your own account: %w", access.ErrPermissionDenied)

	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)
