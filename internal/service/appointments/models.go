package appointments

import (
	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

// DefaultDashboardLatest количество последних записей на дашборде
const DefaultDashboardLatest = 5

// CancelRequest запрос на отмену записи
type CancelRequest struct {
	RequesterID   uuid.UUID
	Role          jwtauth.Role
	AppointmentID uuid.UUID
}

// CompleteRequest запрос на завершение записи преподавателем
type CompleteRequest struct {
	ProfessorID   uuid.UUID
	AppointmentID uuid.UUID
}

// Dashboard сводка для преподавателя
type Dashboard struct {
	Stats  domain.DashboardStats
	Latest []*domain.Appointment
}

// AdminDashboard сводка по всему сервису для администратора
type AdminDashboard struct {
	Stats  domain.SystemStats
	Latest []*domain.Appointment
}
