package domain

import (
	"time"

	"github.com/google/uuid"
)

// Professor owns its weekly office hours and the global availability flag
type Professor struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Image        string
	Department   string
	About        string
	Available    bool
	OfficeHours  WeeklyAvailability
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Snapshot returns the display data copied into new appointments
func (p *Professor) Snapshot() ProfessorSnapshot {
	return ProfessorSnapshot{
		Name:       p.Name,
		Email:      p.Email,
		Image:      p.Image,
		Department: p.Department,
	}
}
