package add_professor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/service/professors"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) AddProfessor(ctx context.Context, req *professors.AddProfessorRequest) (*domain.Professor, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*domain.Professor)
	return p, args.Error(1)
}

const body = `{"name":"Dr. Ada","email":"ada@uni.edu","password":"long-enough","department":"CS"}`

func TestHandle_Created(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("AddProfessor", mock.Anything, mock.MatchedBy(func(r *professors.AddProfessorRequest) bool {
		return r.Email == "ada@uni.edu" && r.Department == "CS"
	})).Return(&domain.Professor{ID: id, Name: "Dr. Ada", Email: "ada@uni.edu", PasswordHash: "hash", Available: true}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, testfixtures.NopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/admin/professors", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id.String(), got["id"])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", professors.ErrInvalidInput, http.StatusBadRequest},
		{"duplicate email", professors.ErrEmailTaken, http.StatusConflict},
		{"internal", professors.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("AddProfessor", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(svc, testfixtures.NopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/admin/professors", strings.NewReader(body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
