package get_free_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
	getFreeSlots "github.com/m04kA/office-hours-service/internal/usecase/get_free_slots"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getFreeSlots.Request) (*getFreeSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getFreeSlots.Response)
	return resp, args.Error(1)
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/professors/{professorId}/slots", h.Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	professorID := uuid.New()
	monday := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getFreeSlots.Request) bool {
		return req.ProfessorID == professorID && req.Days == 3 && req.From != nil && req.From.Equal(monday)
	})).Return(&getFreeSlots.Response{
		ProfessorID:        professorID,
		ProfessorAvailable: true,
		From:               monday,
		Days: []domain.DaySlots{{
			Date: monday,
			Slots: slices.Values([]domain.Slot{
				{Date: monday, StartTime: "10:00", EndTime: "10:30", IsAvailable: false},
				{Date: monday, StartTime: "10:30", EndTime: "11:00", IsAvailable: true},
			}),
		}},
	}, nil)

	rec := serve(NewHandler(uc, testfixtures.NopLogger{}), "/professors/"+professorID.String()+"/slots?from=19_10_2026&days=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var body FreeSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "19_10_2026", body.From)
	require.Len(t, body.Days, 1)
	assert.Equal(t, "Monday", body.Days[0].Weekday)
	assert.Equal(t, "2026-10-19", body.Days[0].Date)
	assert.Equal(t, []SlotJSON{
		{StartTime: "10:00", EndTime: "10:30", StartTimeDisplay: "10:00 AM", EndTimeDisplay: "10:30 AM", IsAvailable: false},
		{StartTime: "10:30", EndTime: "11:00", StartTimeDisplay: "10:30 AM", EndTimeDisplay: "11:00 AM", IsAvailable: true},
	}, body.Days[0].Slots)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	professorID := uuid.New()

	tests := []struct {
		name   string
		target string
		ucErr  error
		want   int
	}{
		{"bad id", "/professors/nope/slots", nil, http.StatusBadRequest},
		{"bad from", "/professors/" + professorID.String() + "/slots?from=2026-10-19", nil, http.StatusBadRequest},
		{"bad days", "/professors/" + professorID.String() + "/slots?days=x", nil, http.StatusBadRequest},
		{"not found", "/professors/" + professorID.String() + "/slots", getFreeSlots.ErrProfessorNotFound, http.StatusNotFound},
		{"invalid", "/professors/" + professorID.String() + "/slots?days=90", getFreeSlots.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/professors/" + professorID.String() + "/slots", getFreeSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(NewHandler(uc, testfixtures.NopLogger{}), tt.target)
			assert.Equal(t, tt.want, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}
