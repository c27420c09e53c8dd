package list_professors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context) ([]*domain.Professor, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*domain.Professor)
	return list, args.Error(1)
}

func get(svc ProfessorService) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/professors", nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, testfixtures.NopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	smith := &domain.Professor{
		ID:           uuid.New(),
		Name:         "Dr. Smith",
		Email:        "smith@uni.edu",
		PasswordHash: "$2a$10$secret-hash",
		Department:   "Computer Science",
		Available:    true,
		OfficeHours: domain.WeeklyAvailability{
			Monday: &domain.TimeWindow{Start: "10:00", End: "11:00"},
		},
	}
	jones := &domain.Professor{ID: uuid.New(), Name: "Dr. Jones", Email: "jones@uni.edu"}

	svc := &mockService{}
	svc.On("List", mock.Anything).Return([]*domain.Professor{smith, jones}, nil)

	rec := get(svc)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []handlers.ProfessorJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, smith.ID.String(), body[0].ID)
	assert.Equal(t, "Computer Science", body[0].Department)
	assert.True(t, body[0].Available)
	require.NotNil(t, body[0].OfficeHours.Monday)
	assert.Equal(t, smith.OfficeHours.Monday.Start, body[0].OfficeHours.Monday.Start)
	assert.False(t, body[1].Available)

	assert.NotContains(t, rec.Body.String(), smith.PasswordHash)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, p := range raw {
		assert.NotContains(t, p, "passwordHash")
		assert.NotContains(t, p, "password")
	}
	svc.AssertExpectations(t)
}

func TestHandle_Empty(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything).Return([]*domain.Professor{}, nil)

	rec := get(svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandle_StorageError(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything).Return(nil, errors.New("db down"))

	rec := get(svc)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
