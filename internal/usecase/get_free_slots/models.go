package get_free_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
)

// Request модель запроса свободных слотов
type Request struct {
	ProfessorID uuid.UUID
	From        *time.Time // Первый день диапазона (nil = сегодня)
	Days        int        // Количество дней (0 = значение по умолчанию)
}

// Response модель ответа со слотами по дням.
// Дни без слотов в ответ не попадают.
type Response struct {
	ProfessorID        uuid.UUID
	ProfessorAvailable bool // Общий флаг доступности преподавателя
	From               time.Time
	Days               []domain.DaySlots
}
