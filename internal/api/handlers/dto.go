package handlers

import (
	"time"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/service/auth"
	"github.com/m04kA/office-hours-service/pkg/ptr"
)

// StudentSnapshotJSON данные студента на момент записи
type StudentSnapshotJSON struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Image         string `json:"image"`
	StudentNumber string `json:"studentNumber"`
}

// ProfessorSnapshotJSON данные преподавателя на момент записи
type ProfessorSnapshotJSON struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Image      string `json:"image"`
	Department string `json:"department"`
}

// AppointmentJSON запись на приём в ответах API
type AppointmentJSON struct {
	ID              string                `json:"id"`
	StudentID       string                `json:"studentId"`
	ProfessorID     string                `json:"professorId"`
	SlotDate        string                `json:"slotDate"`        // "19_10_2026"
	SlotTime        string                `json:"slotTime"`        // "10:30"
	SlotTimeDisplay string                `json:"slotTimeDisplay"` // "10:30 AM"
	Status          string                `json:"status"`
	Cancelled       bool                  `json:"cancelled"`
	IsCompleted     bool                  `json:"isCompleted"`
	Student         StudentSnapshotJSON   `json:"student"`
	Professor       ProfessorSnapshotJSON `json:"professor"`
	CreatedAt       string                `json:"createdAt"`
	CancelledAt     *string               `json:"cancelledAt,omitempty"`
	CompletedAt     *string               `json:"completedAt,omitempty"`
}

// FromAppointment конвертирует запись в JSON модель
func FromAppointment(a *domain.Appointment) AppointmentJSON {
	return AppointmentJSON{
		ID:              a.ID.String(),
		StudentID:       a.StudentID.String(),
		ProfessorID:     a.ProfessorID.String(),
		SlotDate:        a.DateKey().String(),
		SlotTime:        a.Time.String(),
		SlotTimeDisplay: a.Time.Display(),
		Status:          string(a.Status),
		Cancelled:       a.IsCancelled(),
		IsCompleted:     a.IsCompleted(),
		Student: StudentSnapshotJSON{
			Name:          a.Student.Name,
			Email:         a.Student.Email,
			Image:         a.Student.Image,
			StudentNumber: a.Student.StudentNumber,
		},
		Professor: ProfessorSnapshotJSON{
			Name:       a.Professor.Name,
			Email:      a.Professor.Email,
			Image:      a.Professor.Image,
			Department: a.Professor.Department,
		},
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		CancelledAt: formatOptional(a.CancelledAt),
		CompletedAt: formatOptional(a.CompletedAt),
	}
}

// FromAppointments конвертирует список записей
func FromAppointments(list []*domain.Appointment) []AppointmentJSON {
	out := make([]AppointmentJSON, 0, len(list))
	for _, a := range list {
		out = append(out, FromAppointment(a))
	}
	return out
}

// ProfessorJSON публичный профиль преподавателя (без хеша пароля)
type ProfessorJSON struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Email       string                    `json:"email"`
	Image       string                    `json:"image"`
	Department  string                    `json:"department"`
	About       string                    `json:"about"`
	Available   bool                      `json:"available"`
	OfficeHours domain.WeeklyAvailability `json:"officeHours"`
}

// FromProfessor конвертирует преподавателя в JSON модель
func FromProfessor(p *domain.Professor) ProfessorJSON {
	return ProfessorJSON{
		ID:          p.ID.String(),
		Name:        p.Name,
		Email:       p.Email,
		Image:       p.Image,
		Department:  p.Department,
		About:       p.About,
		Available:   p.Available,
		OfficeHours: p.OfficeHours,
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return ptr.Ptr(t.Format(time.RFC3339))
}

// SessionJSON ответ входа и регистрации
type SessionJSON struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func FromSession(s *auth.Session) SessionJSON {
	return SessionJSON{
		Token:  s.Token,
		UserID: s.UserID.String(),
		Role:   string(s.Role),
	}
}
