package activity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidEntry = fmt.Errorf("%w: title, description and category are required", ErrValidation)
	ErrInvalidLimit = fmt.Errorf("%w: limit must be between 1 and 100", ErrValidation)

	errPublisherDisabled = errors.New("publisher disabled")
)
