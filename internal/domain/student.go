package domain

import (
	"time"

	"github.com/google/uuid"
)

// Student a registered student
type Student struct {
	ID            uuid.UUID
	Name          string
	Email         string
	PasswordHash  string
	StudentNumber string
	Phone         string
	Image         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Snapshot returns the display data copied into new appointments
func (s *Student) Snapshot() StudentSnapshot {
	return StudentSnapshot{
		Name:          s.Name,
		Email:         s.Email,
		Image:         s.Image,
		StudentNumber: s.StudentNumber,
	}
}
