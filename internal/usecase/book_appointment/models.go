package book_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/pkg/types"
)

// Request модель запроса на запись к преподавателю
type Request struct {
	StudentID   uuid.UUID        // ID студента из токена
	ProfessorID uuid.UUID        // ID преподавателя
	Date        time.Time        // Календарный день приёма
	Time        types.TimeString // Время начала слота (например, "10:30")
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}

// результаты для метрики bookings_total
const (
	resultOK            = "ok"
	resultSlotTaken     = "slot_taken"
	resultUnavailable   = "professor_unavailable"
	resultNotOffered    = "not_offered"
	resultNotFound      = "not_found"
	resultInvalid       = "invalid"
	resultInternalError = "error"
)
