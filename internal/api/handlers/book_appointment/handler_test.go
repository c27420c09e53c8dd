package book_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/api/middleware"
	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
	bookAppointment "github.com/m04kA/office-hours-service/internal/usecase/book_appointment"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
	"github.com/m04kA/office-hours-service/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*bookAppointment.Response)
	return resp, args.Error(1)
}

func post(h *Handler, studentID uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	if studentID != uuid.Nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), studentID, jwtauth.RoleStudent))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	studentID, professorID := uuid.New(), uuid.New()
	monday := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &bookAppointment.Request{
		StudentID:   studentID,
		ProfessorID: professorID,
		Date:        monday,
		Time:        "10:30",
	}).Return(&bookAppointment.Response{Appointment: &domain.Appointment{
		ID:          uuid.New(),
		StudentID:   studentID,
		ProfessorID: professorID,
		Date:        monday,
		Time:        "10:30",
		Status:      domain.StatusBooked,
		Professor:   domain.ProfessorSnapshot{Name: "Dr. Smith"},
	}}, nil)

	rec := post(NewHandler(uc, testfixtures.NopLogger{}), studentID,
		`{"professorId":"`+professorID.String()+`","slotDate":"19_10_2026","slotTime":"10:30"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body handlers.AppointmentJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, types.DateKey("19_10_2026").String(), body.SlotDate)
	assert.Equal(t, "10:30 AM", body.SlotTimeDisplay)
	assert.Equal(t, "booked", body.Status)
	assert.False(t, body.Cancelled)
	assert.Equal(t, "Dr. Smith", body.Professor.Name)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	studentID, professorID := uuid.New(), uuid.New()
	valid := `{"professorId":"` + professorID.String() + `","slotDate":"19_10_2026","slotTime":"10:30"}`

	tests := []struct {
		name  string
		body  string
		ucErr error
		want  int
	}{
		{"malformed json", `{`, nil, http.StatusBadRequest},
		{"bad professor id", `{"professorId":"x","slotDate":"19_10_2026","slotTime":"10:30"}`, nil, http.StatusBadRequest},
		{"bad date", `{"professorId":"` + professorID.String() + `","slotDate":"2026-10-19","slotTime":"10:30"}`, nil, http.StatusBadRequest},
		{"bad time", `{"professorId":"` + professorID.String() + `","slotDate":"19_10_2026","slotTime":"25:00"}`, nil, http.StatusBadRequest},
		{"slot taken", valid, bookAppointment.ErrSlotTaken, http.StatusConflict},
		{"unavailable", valid, bookAppointment.ErrProfessorUnavailable, http.StatusConflict},
		{"not offered", valid, bookAppointment.ErrSlotNotOffered, http.StatusConflict},
		{"professor not found", valid, bookAppointment.ErrProfessorNotFound, http.StatusNotFound},
		{"student not found", valid, bookAppointment.ErrStudentNotFound, http.StatusNotFound},
		{"internal", valid, bookAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := post(NewHandler(uc, testfixtures.NopLogger{}), studentID, tt.body)
			assert.Equal(t, tt.want, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := post(NewHandler(&mockUseCase{}, testfixtures.NopLogger{}), uuid.Nil, `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
