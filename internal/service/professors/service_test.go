package professors

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
)

func newService(t *testing.T) (*Service, *testfixtures.Store) {
	t.Helper()
	store := testfixtures.NewStore(func() time.Time { return time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC) })
	return NewService(store.Professors(), testfixtures.NopLogger{}), store
}

func TestAddProfessor(t *testing.T) {
	svc, _ := newService(t)

	p, err := svc.AddProfessor(context.Background(), &AddProfessorRequest{
		Name:       "Dr. Smith",
		Email:      " Smith@Uni.edu ",
		Password:   "correct horse",
		Department: "Physics",
	})
	require.NoError(t, err)

	assert.Equal(t, "smith@uni.edu", p.Email)
	assert.True(t, p.Available)
	assert.Equal(t, domain.DefaultWeeklyAvailability(), p.OfficeHours)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("correct horse")))

	_, err = svc.AddProfessor(context.Background(), &AddProfessorRequest{
		Name: "Other", Email: "smith@uni.edu", Password: "12345678",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAddProfessor_Validation(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name string
		req  AddProfessorRequest
	}{
		{"missing name", AddProfessorRequest{Email: "a@uni.edu", Password: "12345678"}},
		{"bad email", AddProfessorRequest{Name: "A", Email: "not-an-email", Password: "12345678"}},
		{"short password", AddProfessorRequest{Name: "A", Email: "a@uni.edu", Password: "1234567"}},
		{"bad image url", AddProfessorRequest{Name: "A", Email: "a@uni.edu", Password: "12345678", Image: "::"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddProfessor(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateOfficeHours(t *testing.T) {
	svc, store := newService(t)
	p := store.AddProfessor(domain.Professor{Name: "Dr. Smith", Email: "smith@uni.edu", OfficeHours: domain.DefaultWeeklyAvailability()})

	hours, err := svc.UpdateOfficeHours(context.Background(), p.ID, domain.WeeklyAvailability{
		Monday:  &domain.TimeWindow{Start: "09:00", End: "11:00"},
		Tuesday: &domain.TimeWindow{},
	})
	require.NoError(t, err)
	assert.Nil(t, hours.Tuesday)

	stored, err := svc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, *hours, stored.OfficeHours)
}

func TestUpdateOfficeHours_Rejected(t *testing.T) {
	svc, store := newService(t)
	p := store.AddProfessor(domain.Professor{Name: "Dr. Smith", Email: "smith@uni.edu", OfficeHours: domain.DefaultWeeklyAvailability()})

	for name, window := range map[string]domain.TimeWindow{
		"partial":  {Start: "09:00"},
		"inverted": {Start: "11:00", End: "09:00"},
		"empty":    {Start: "11:00", End: "11:00"},
		"format":   {Start: "9:00", End: "11:00"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.UpdateOfficeHours(context.Background(), p.ID, domain.WeeklyAvailability{Friday: &window})
			assert.ErrorIs(t, err, ErrInvalidOfficeHours)
		})
	}

	stored, err := svc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeeklyAvailability(), stored.OfficeHours)

	_, err = svc.UpdateOfficeHours(context.Background(), uuid.New(), domain.DefaultWeeklyAvailability())
	assert.ErrorIs(t, err, ErrProfessorNotFound)
}

func TestToggleAvailability(t *testing.T) {
	svc, store := newService(t)
	p := store.AddProfessor(domain.Professor{Name: "Dr. Smith", Email: "smith@uni.edu", Available: true})

	available, err := svc.ToggleAvailability(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.ToggleAvailability(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, available)

	_, err = svc.ToggleAvailability(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfessorNotFound)
}

func TestList(t *testing.T) {
	svc, store := newService(t)
	store.AddProfessor(domain.Professor{Name: "Zed", Email: "z@uni.edu"})
	store.AddProfessor(domain.Professor{Name: "Amy", Email: "a@uni.edu"})

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Amy", list[0].Name)
}
