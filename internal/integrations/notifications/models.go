package notifications

import (
	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/pkg/types"
)

// Ключи маршрутизации событий
const (
	RoutingKeyBooked    = "appointment.booked"
	RoutingKeyCancelled = "appointment.cancelled"
	RoutingKeyReminder  = "appointment.reminder"
)

// StudentContact контакт студента для рассылки
type StudentContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AppointmentEvent тело событий о записи
type AppointmentEvent struct {
	EventID                uuid.UUID        `json:"eventId"`
	AppointmentID          uuid.UUID        `json:"appointmentId"`
	AppointmentDate        types.DateKey    `json:"appointmentDate"`
	AppointmentTime        types.TimeString `json:"appointmentTime"`
	AppointmentTimeDisplay string           `json:"appointmentTimeDisplay"`
	StudentContact         StudentContact   `json:"studentContact"`
	ProfessorName          string           `json:"professorName"`
	ProfessorEmail         string           `json:"professorEmail"`
	CancelledBy            string           `json:"cancelledBy,omitempty"`
}

func newEvent(a *domain.Appointment) AppointmentEvent {
	return AppointmentEvent{
		EventID:                uuid.New(),
		AppointmentID:          a.ID,
		AppointmentDate:        a.DateKey(),
		AppointmentTime:        a.Time,
		AppointmentTimeDisplay: a.Time.Display(),
		StudentContact: StudentContact{
			Name:  a.Student.Name,
			Email: a.Student.Email,
		},
		ProfessorName:  a.Professor.Name,
		ProfessorEmail: a.Professor.Email,
	}
}
