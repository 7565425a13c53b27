package assessment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWeight rejects a negative priority weight before any
	// computation is attempted.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrInvalidProfileField rejects a profile value outside its enumerated set.
	ErrInvalidProfileField = errors.New("invalid profile field")
)

func fieldError(field, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidProfileField, field, value)
}
