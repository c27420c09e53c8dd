package book_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
	"github.com/m04kA/office-hours-service/pkg/types"
)

var monday = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

type env struct {
	store     *testfixtures.Store
	clock     *testfixtures.Clock
	notifier  *testfixtures.Notifier
	metrics   *testfixtures.Metrics
	uc        *UseCase
	student   domain.Student
	professor domain.Professor
}

func newEnv(t *testing.T) *env {
	t.Helper()

	clock := testfixtures.NewClock(monday.Add(8 * time.Hour))
	store := testfixtures.NewStore(clock.Now)
	e := &env{
		store:    store,
		clock:    clock,
		notifier: &testfixtures.Notifier{},
		metrics:  &testfixtures.Metrics{},
	}

	e.student = store.AddStudent(domain.Student{Name: "Ada", Email: "ada@uni.edu", StudentNumber: "123456789"})
	e.professor = store.AddProfessor(domain.Professor{
		Name:      "Dr. Smith",
		Email:     "smith@uni.edu",
		Available: true,
		OfficeHours: domain.WeeklyAvailability{
			Monday: &domain.TimeWindow{Start: "10:00", End: "11:00"},
		},
	})

	e.uc = NewUseCase(
		store.Students(),
		store.Professors(),
		store.Appointments(),
		store.Ledger(),
		store.TxManager(),
		e.notifier,
		e.metrics,
		Options{Location: time.UTC, MaxDays: 31},
		testfixtures.NopLogger{},
	)
	e.uc.timeProvider = clock
	return e
}

func (e *env) request(date time.Time, at types.TimeString) *Request {
	return &Request{StudentID: e.student.ID, ProfessorID: e.professor.ID, Date: date, Time: at}
}

func TestExecute_Success(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), e.request(monday, "10:30"))
	require.NoError(t, err)

	a := resp.Appointment
	assert.Equal(t, domain.StatusBooked, a.Status)
	assert.Equal(t, types.TimeString("10:30"), a.Time)
	assert.Equal(t, types.DateKey("19_10_2026"), a.DateKey())
	assert.Equal(t, "Ada", a.Student.Name)
	assert.Equal(t, "Dr. Smith", a.Professor.Name)

	assert.Equal(t, 1, e.store.BookedCount())
	assert.Equal(t, 1, e.metrics.Bookings[resultOK])
	require.Len(t, e.notifier.Events(), 1)
	assert.Equal(t, a.ID, e.notifier.Events()[0].AppointmentID)
}

func TestExecute_SlotTaken(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), e.request(monday, "10:00"))
	require.NoError(t, err)

	_, err = e.uc.Execute(context.Background(), e.request(monday, "10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 1, e.store.AppointmentCount())
	assert.Equal(t, 1, e.metrics.Bookings[resultSlotTaken])
}

func TestExecute_ConcurrentBookingsOfSameSlot(t *testing.T) {
	e := newEnv(t)

	const attempts = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		success  int
		conflict int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.uc.Execute(context.Background(), e.request(monday, "10:30"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, ErrSlotTaken):
				conflict++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, attempts-1, conflict)
	assert.Equal(t, 1, e.store.BookedCount())
	assert.Equal(t, 1, e.store.AppointmentCount())
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(e *env) *Request
		wantErr error
		result  string
	}{
		{
			name: "unknown student",
			prepare: func(e *env) *Request {
				req := e.request(monday, "10:00")
				req.StudentID = uuid.New()
				return req
			},
			wantErr: ErrStudentNotFound,
			result:  resultNotFound,
		},
		{
			name: "unknown professor",
			prepare: func(e *env) *Request {
				req := e.request(monday, "10:00")
				req.ProfessorID = uuid.New()
				return req
			},
			wantErr: ErrProfessorNotFound,
			result:  resultNotFound,
		},
		{
			name: "professor unavailable",
			prepare: func(e *env) *Request {
				_, err := e.store.Professors().ToggleAvailability(context.Background(), e.professor.ID)
				if err != nil {
					panic(err)
				}
				return e.request(monday, "10:00")
			},
			wantErr: ErrProfessorUnavailable,
			result:  resultUnavailable,
		},
		{
			name:    "outside office hours",
			prepare: func(e *env) *Request { return e.request(monday, "11:00") },
			wantErr: ErrSlotNotOffered,
			result:  resultNotOffered,
		},
		{
			name:    "off grid",
			prepare: func(e *env) *Request { return e.request(monday, "10:15") },
			wantErr: ErrSlotNotOffered,
			result:  resultNotOffered,
		},
		{
			name:    "day without office hours",
			prepare: func(e *env) *Request { return e.request(monday.AddDate(0, 0, 1), "10:00") },
			wantErr: ErrSlotNotOffered,
			result:  resultNotOffered,
		},
		{
			name: "slot already over",
			prepare: func(e *env) *Request {
				e.clock.Set(monday.Add(10*time.Hour + 31*time.Minute))
				return e.request(monday, "10:00")
			},
			wantErr: ErrSlotNotOffered,
			result:  resultNotOffered,
		},
		{
			name:    "past day",
			prepare: func(e *env) *Request { return e.request(monday.AddDate(0, 0, -7), "10:00") },
			wantErr: ErrSlotNotOffered,
			result:  resultNotOffered,
		},
		{
			name:    "beyond horizon",
			prepare: func(e *env) *Request { return e.request(monday.AddDate(0, 0, 35), "10:00") },
			wantErr: ErrSlotNotOffered,
			result:  resultNotOffered,
		},
		{
			name:    "malformed time",
			prepare: func(e *env) *Request { return e.request(monday, "10:5") },
			wantErr: ErrInvalidInput,
			result:  resultInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)

			_, err := e.uc.Execute(context.Background(), tt.prepare(e))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, e.store.BookedCount())
			assert.Equal(t, 0, e.store.AppointmentCount())
			assert.Equal(t, 1, e.metrics.Bookings[tt.result])
			assert.Empty(t, e.notifier.Events())
		})
	}
}

func TestExecute_StartedSlotIsNotOffered(t *testing.T) {
	e := newEnv(t)
	e.clock.Set(monday.Add(10*time.Hour + 10*time.Minute))

	_, err := e.uc.Execute(context.Background(), e.request(monday, "10:00"))
	assert.ErrorIs(t, err, ErrSlotNotOffered)

	// следующий шаг сетки ещё доступен
	_, err = e.uc.Execute(context.Background(), e.request(monday, "10:30"))
	assert.NoError(t, err)
}

func TestExecute_NotifierFailureKeepsBooking(t *testing.T) {
	e := newEnv(t)
	e.notifier.Err = errors.New("broker down")

	resp, err := e.uc.Execute(context.Background(), e.request(monday, "10:00"))
	require.NoError(t, err)
	assert.NotNil(t, resp.Appointment)
	assert.Equal(t, 1, e.store.AppointmentCount())
}

func TestExecute_NormalizesDateToScheduleZone(t *testing.T) {
	e := newEnv(t)

	// полдень по Москве того же календарного дня
	msk := time.FixedZone("MSK", 3*60*60)
	resp, err := e.uc.Execute(context.Background(), e.request(time.Date(2026, time.October, 19, 12, 0, 0, 0, msk), "10:00"))
	require.NoError(t, err)
	assert.Equal(t, monday, resp.Appointment.Date)
}
