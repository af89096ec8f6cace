package validation

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidUUID indicates a malformed UUID path or payload parameter.
var ErrInvalidUUID = fmt.Errorf("invalid UUID format")

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}
