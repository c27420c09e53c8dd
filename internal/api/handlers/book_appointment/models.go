package book_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	bookAppointment "github.com/m04kA/office-hours-service/internal/usecase/book_appointment"
	"github.com/m04kA/office-hours-service/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	ProfessorID string `json:"professorId"`
	SlotDate    string `json:"slotDate"` // "19_10_2026"
	SlotTime    string `json:"slotTime"` // "10:30"
}

var (
	errInvalidProfessorID = errors.New("invalid professor id")
	errInvalidDate        = errors.New("invalid slot date")
	errInvalidTime        = errors.New("invalid slot time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest(studentID uuid.UUID) (*bookAppointment.Request, error) {
	professorID, err := uuid.Parse(r.ProfessorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidProfessorID, err)
	}

	date, err := types.DateKey(r.SlotDate).Date(time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	slotTime, err := types.NewTimeStringFromString(r.SlotTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &bookAppointment.Request{
		StudentID:   studentID,
		ProfessorID: professorID,
		Date:        date,
		Time:        slotTime,
	}, nil
}
