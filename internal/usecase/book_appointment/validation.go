package book_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudentID == uuid.Nil {
		return fmt.Errorf("%w: studentID is required", ErrInvalidInput)
	}

	if req.ProfessorID == uuid.Nil {
		return fmt.Errorf("%w: professorID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateHorizon проверяет, что день входит в [сегодня, сегодня+maxDays)
func validateHorizon(day, now time.Time, maxDays int) error {
	today := types.StartOfDay(now)
	if day.Before(today) {
		return fmt.Errorf("%w: date %s is in the past", ErrSlotNotOffered, types.NewDateKey(day))
	}

	if !day.Before(today.AddDate(0, 0, maxDays)) {
		return fmt.Errorf("%w: can only book %d days ahead", ErrSlotNotOffered, maxDays)
	}

	return nil
}
