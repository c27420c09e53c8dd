package testfixtures

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
	appointmentRepo "github.com/m04kA/office-hours-service/internal/infra/storage/appointment"
	ledgerRepo "github.com/m04kA/office-hours-service/internal/infra/storage/ledger"
	professorRepo "github.com/m04kA/office-hours-service/internal/infra/storage/professor"
	studentRepo "github.com/m04kA/office-hours-service/internal/infra/storage/student"
	"github.com/m04kA/office-hours-service/pkg/types"
)

type slotKey struct {
	professorID uuid.UUID
	date        types.DateKey
	time        types.TimeString
}

// Store in-memory state shared by the fake repositories.
// Errors mirror the Postgres repositories' sentinels.
type Store struct {
	mu           sync.Mutex
	professors   map[uuid.UUID]domain.Professor
	students     map[uuid.UUID]domain.Student
	appointments map[uuid.UUID]domain.Appointment
	created      []uuid.UUID
	slots        map[slotKey]uuid.UUID

	now func() time.Time
}

// NewStore creates an empty store. now stamps created_at values.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		professors:   make(map[uuid.UUID]domain.Professor),
		students:     make(map[uuid.UUID]domain.Student),
		appointments: make(map[uuid.UUID]domain.Appointment),
		slots:        make(map[slotKey]uuid.UUID),
		now:          now,
	}
}

// AddProfessor inserts p, assigning an ID if missing
func (s *Store) AddProfessor(p domain.Professor) domain.Professor {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.mu.Lock()
	s.professors[p.ID] = p
	s.mu.Unlock()
	return p
}

// AddStudent inserts st, assigning an ID if missing
func (s *Store) AddStudent(st domain.Student) domain.Student {
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	s.mu.Lock()
	s.students[st.ID] = st
	s.mu.Unlock()
	return st
}

// BookedCount number of ledger entries
func (s *Store) BookedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// AppointmentCount number of stored appointments
func (s *Store) AppointmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appointments)
}

func (s *Store) Professors() *ProfessorRepository     { return &ProfessorRepository{s: s} }
func (s *Store) Students() *StudentRepository         { return &StudentRepository{s: s} }
func (s *Store) Appointments() *AppointmentRepository { return &AppointmentRepository{s: s} }
func (s *Store) Ledger() *LedgerRepository            { return &LedgerRepository{s: s} }
func (s *Store) TxManager() *TxManager                { return &TxManager{} }

// ProfessorRepository in-memory professors
type ProfessorRepository struct{ s *Store }

func (r *ProfessorRepository) Create(ctx context.Context, p *domain.Professor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.professors {
		if existing.Email == p.Email {
			return professorRepo.ErrEmailTaken
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.professors[p.ID] = *p
	return nil
}

func (r *ProfessorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.professors[id]
	if !ok {
		return nil, professorRepo.ErrProfessorNotFound
	}
	return &p, nil
}

func (r *ProfessorRepository) GetByEmail(ctx context.Context, email string) (*domain.Professor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.professors {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, professorRepo.ErrProfessorNotFound
}

func (r *ProfessorRepository) List(ctx context.Context) ([]*domain.Professor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Professor, 0, len(r.s.professors))
	for _, p := range r.s.professors {
		out = append(out, &p)
	}
	slices.SortFunc(out, func(a, b *domain.Professor) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return out, nil
}

func (r *ProfessorRepository) UpdateOfficeHours(ctx context.Context, id uuid.UUID, hours domain.WeeklyAvailability) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.professors[id]
	if !ok {
		return professorRepo.ErrProfessorNotFound
	}
	p.OfficeHours = hours
	r.s.professors[id] = p
	return nil
}

func (r *ProfessorRepository) ToggleAvailability(ctx context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.professors[id]
	if !ok {
		return false, professorRepo.ErrProfessorNotFound
	}
	p.Available = !p.Available
	r.s.professors[id] = p
	return p.Available, nil
}

// StudentRepository in-memory students
type StudentRepository struct{ s *Store }

func (r *StudentRepository) Create(ctx context.Context, st *domain.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.students {
		if existing.Email == st.Email {
			return studentRepo.ErrEmailTaken
		}
	}
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	st.CreatedAt = r.s.now()
	st.UpdatedAt = st.CreatedAt
	r.s.students[st.ID] = *st
	return nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.students[id]
	if !ok {
		return nil, studentRepo.ErrStudentNotFound
	}
	return &st, nil
}

func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.students {
		if st.Email == email {
			return &st, nil
		}
	}
	return nil, studentRepo.ErrStudentNotFound
}

// AppointmentRepository in-memory appointments
type AppointmentRepository struct{ s *Store }

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	r.s.mu.Lock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = r.s.now()
	r.s.appointments[a.ID] = *a
	r.s.created = append(r.s.created, a.ID)
	r.s.mu.Unlock()

	id := a.ID
	onRollback(ctx, func() {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
		delete(r.s.appointments, id)
		r.s.created = slices.DeleteFunc(r.s.created, func(x uuid.UUID) bool { return x == id })
	})
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return &a, nil
}

func (r *AppointmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Appointment, error) {
	return r.filter(func(a domain.Appointment) bool { return a.StudentID == studentID }), nil
}

func (r *AppointmentRepository) ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]*domain.Appointment, error) {
	return r.filter(func(a domain.Appointment) bool { return a.ProfessorID == professorID }), nil
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	return r.filter(func(domain.Appointment) bool { return true }), nil
}

func (r *AppointmentRepository) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return &domain.SystemStats{
		Professors:   len(r.s.professors),
		Students:     len(r.s.students),
		Appointments: len(r.s.appointments),
	}, nil
}

func (r *AppointmentRepository) ListBookedBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	fromDay, toDay := types.StartOfDay(from), types.StartOfDay(to)
	out := r.filter(func(a domain.Appointment) bool {
		y, m, d := a.Date.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, from.Location())
		return a.Status == domain.StatusBooked && !day.Before(fromDay) && !day.After(toDay)
	})
	slices.Reverse(out)
	return out, nil
}

// filter returns matches, newest first
func (r *AppointmentRepository) filter(match func(a domain.Appointment) bool) []*domain.Appointment {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Appointment, 0)
	for i := len(r.s.created) - 1; i >= 0; i-- {
		a := r.s.appointments[r.s.created[i]]
		if match(a) {
			out = append(out, &a)
		}
	}
	return out
}

func (r *AppointmentRepository) Finalize(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus, at time.Time) error {
	r.s.mu.Lock()
	a, ok := r.s.appointments[id]
	if !ok || a.Status != domain.StatusBooked {
		r.s.mu.Unlock()
		return appointmentRepo.ErrStatusConflict
	}
	prev := a
	a.Status = status
	switch status {
	case domain.StatusCancelled:
		a.CancelledAt = &at
	case domain.StatusCompleted:
		a.CompletedAt = &at
	}
	r.s.appointments[id] = a
	r.s.mu.Unlock()

	onRollback(ctx, func() {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
		r.s.appointments[id] = prev
	})
	return nil
}

func (r *AppointmentRepository) ProfessorStats(ctx context.Context, professorID uuid.UUID) (*domain.DashboardStats, error) {
	list := r.filter(func(a domain.Appointment) bool { return a.ProfessorID == professorID })
	stats := &domain.DashboardStats{TotalAppointments: len(list)}
	students := make(map[uuid.UUID]struct{})
	for _, a := range list {
		students[a.StudentID] = struct{}{}
		switch a.Status {
		case domain.StatusCompleted:
			stats.CompletedAppointments++
		case domain.StatusCancelled:
			stats.CancelledAppointments++
		}
	}
	stats.UniqueStudents = len(students)
	return stats, nil
}

// LedgerRepository in-memory booked slots with an atomic conditional insert
type LedgerRepository struct{ s *Store }

func key(slot domain.BookedSlot) slotKey {
	return slotKey{professorID: slot.ProfessorID, date: types.NewDateKey(slot.Date), time: slot.Time}
}

func (r *LedgerRepository) Reserve(ctx context.Context, slot domain.BookedSlot) error {
	k := key(slot)

	r.s.mu.Lock()
	if _, taken := r.s.slots[k]; taken {
		r.s.mu.Unlock()
		return ledgerRepo.ErrAlreadyBooked
	}
	r.s.slots[k] = slot.AppointmentID
	r.s.mu.Unlock()

	onRollback(ctx, func() {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
		if r.s.slots[k] == slot.AppointmentID {
			delete(r.s.slots, k)
		}
	})
	return nil
}

func (r *LedgerRepository) Release(ctx context.Context, slot domain.BookedSlot) error {
	k := key(slot)

	r.s.mu.Lock()
	holder, ok := r.s.slots[k]
	if !ok || holder != slot.AppointmentID {
		r.s.mu.Unlock()
		return nil
	}
	delete(r.s.slots, k)
	r.s.mu.Unlock()

	onRollback(ctx, func() {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
		if _, taken := r.s.slots[k]; !taken {
			r.s.slots[k] = holder
		}
	})
	return nil
}

func (r *LedgerRepository) Index(ctx context.Context, professorID uuid.UUID, from, to time.Time) (domain.BookedSlotIndex, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	fromDay, toDay := types.StartOfDay(from), types.StartOfDay(to)
	idx := make(domain.BookedSlotIndex)
	for k := range r.s.slots {
		if k.professorID != professorID {
			continue
		}
		day, err := k.date.Date(from.Location())
		if err != nil || day.Before(fromDay) || day.After(toDay) {
			continue
		}
		idx.Add(day, k.time)
	}
	return idx, nil
}
