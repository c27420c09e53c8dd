package update_office_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/office-hours-service/internal/api/middleware"
	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/service/professors"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateOfficeHours(ctx context.Context, professorID uuid.UUID, hours domain.WeeklyAvailability) (*domain.WeeklyAvailability, error) {
	args := m.Called(ctx, professorID, hours)
	w, _ := args.Get(0).(*domain.WeeklyAvailability)
	return w, args.Error(1)
}

func put(h *Handler, professorID uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/professors/me/office-hours", strings.NewReader(body))
	req = req.WithContext(middleware.WithIdentity(req.Context(), professorID, jwtauth.RoleProfessor))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	professorID := uuid.New()
	hours := domain.WeeklyAvailability{Monday: &domain.TimeWindow{Start: "10:00", End: "13:00"}}

	svc := &mockService{}
	svc.On("UpdateOfficeHours", mock.Anything, professorID, hours).Return(&hours, nil)

	rec := put(NewHandler(svc, testfixtures.NopLogger{}), professorID, `{"monday":{"start":"10:00","end":"13:00"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"monday":{"start":"10:00","end":"13:00"}}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"reversed window", professors.ErrInvalidOfficeHours, http.StatusBadRequest},
		{"unknown professor", professors.ErrProfessorNotFound, http.StatusNotFound},
		{"internal", professors.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("UpdateOfficeHours", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := put(NewHandler(svc, testfixtures.NopLogger{}), uuid.New(), `{"friday":{"start":"15:00","end":"12:00"}}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	svc := &mockService{}
	rec := put(NewHandler(svc, testfixtures.NopLogger{}), uuid.New(), `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "UpdateOfficeHours", mock.Anything, mock.Anything, mock.Anything)
}
