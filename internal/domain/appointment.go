package domain

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/pkg/types"
)

// AppointmentStatus lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid reports whether s is a known status.
func (s AppointmentStatus) IsValid() bool {
	return s == StatusBooked || s == StatusCancelled || s == StatusCompleted
}

// StudentSnapshot student display data copied at booking time
type StudentSnapshot struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Image         string `json:"image"`
	StudentNumber string `json:"studentNumber"`
}

// Value implements driver.Valuer (stored as JSONB).
func (s StudentSnapshot) Value() (driver.Value, error) {
	return jsonValue(s)
}

// Scan implements sql.Scanner.
func (s *StudentSnapshot) Scan(src any) error {
	return scanJSON(src, s)
}

// ProfessorSnapshot professor display data copied at booking time
type ProfessorSnapshot struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Image      string `json:"image"`
	Department string `json:"department"`
}

// Value implements driver.Valuer (stored as JSONB).
func (s ProfessorSnapshot) Value() (driver.Value, error) {
	return jsonValue(s)
}

// Scan implements sql.Scanner.
func (s *ProfessorSnapshot) Scan(src any) error {
	return scanJSON(src, s)
}

// Appointment a booked office-hours slot.
// Snapshots keep the data as it was at booking time and are never refreshed.
type Appointment struct {
	ID          uuid.UUID
	StudentID   uuid.UUID
	ProfessorID uuid.UUID
	Date        time.Time // calendar day, only Y/M/D are meaningful
	Time        types.TimeString
	Status      AppointmentStatus

	Student   StudentSnapshot
	Professor ProfessorSnapshot

	CreatedAt   time.Time
	CancelledAt *time.Time
	CompletedAt *time.Time
}

// IsCancelled returns true if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsCompleted returns true if the appointment was completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// IsFinal returns true for terminal states
func (a *Appointment) IsFinal() bool {
	return a.IsCancelled() || a.IsCompleted()
}

// Cancel moves a booked appointment to cancelled.
func (a *Appointment) Cancel(at time.Time) error {
	if a.IsFinal() {
		return ErrAppointmentFinalized
	}
	a.Status = StatusCancelled
	a.CancelledAt = &at
	return nil
}

// Complete moves a booked appointment to completed. The slot stays consumed.
func (a *Appointment) Complete(at time.Time) error {
	if a.IsFinal() {
		return ErrAppointmentFinalized
	}
	a.Status = StatusCompleted
	a.CompletedAt = &at
	return nil
}

// IsParticipant reports whether requesterID is the appointment's student or professor.
func (a *Appointment) IsParticipant(requesterID uuid.UUID) bool {
	return requesterID == a.StudentID || requesterID == a.ProfessorID
}

// StartsAt anchors the appointment's wall-clock start to loc.
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	y, m, d := a.Date.Date()
	return a.Time.On(time.Date(y, m, d, 0, 0, 0, 0, loc))
}

// DateKey returns the day_month_year key of the appointment's day.
func (a *Appointment) DateKey() types.DateKey {
	return types.NewDateKey(a.Date)
}

// DashboardStats aggregated appointment data for a professor
type DashboardStats struct {
	TotalAppointments     int
	CompletedAppointments int
	CancelledAppointments int
	UniqueStudents        int
}

// SystemStats service-wide counters for the admin dashboard
type SystemStats struct {
	Professors   int
	Students     int
	Appointments int
}
