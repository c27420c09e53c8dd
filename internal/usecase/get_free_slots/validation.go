package get_free_slots

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxDays int) error {
	if req.ProfessorID == uuid.Nil {
		return fmt.Errorf("%w: professorID is required", ErrInvalidInput)
	}

	if req.Days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	if req.Days > maxDays {
		return fmt.Errorf("%w: days must not exceed %d", ErrInvalidInput, maxDays)
	}

	return nil
}
