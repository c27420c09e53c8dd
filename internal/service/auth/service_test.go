package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/testfixtures"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newService(t *testing.T) (*Service, *testfixtures.Store, *jwtauth.Manager) {
	t.Helper()

	store := testfixtures.NewStore(nil)
	tokens, err := jwtauth.NewManager("test-secret", time.Hour, "office-hours")
	require.NoError(t, err)

	svc := NewService(store.Students(), store.Professors(), tokens,
		AdminCredentials{Email: "Admin@Uni.edu", PasswordHash: hash(t, "admin-password")},
		testfixtures.NopLogger{})
	return svc, store, tokens
}

func TestRegisterStudent(t *testing.T) {
	svc, _, tokens := newService(t)

	session, err := svc.RegisterStudent(context.Background(), &RegisterStudentRequest{
		Name:          "Ada",
		Email:         "Ada@Uni.edu",
		Password:      "password1",
		StudentNumber: "123456789",
	})
	require.NoError(t, err)

	claims, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID.String(), claims.Subject)
	assert.Equal(t, jwtauth.RoleStudent, claims.Role)
	assert.Equal(t, "ada@uni.edu", claims.Email)

	login, err := svc.LoginStudent(context.Background(), &LoginRequest{Email: "ada@uni.edu", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, session.UserID, login.UserID)

	_, err = svc.RegisterStudent(context.Background(), &RegisterStudentRequest{
		Name: "Ada 2", Email: "ada@uni.edu", Password: "password2", StudentNumber: "1",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterStudent_Validation(t *testing.T) {
	svc, _, _ := newService(t)

	tests := []struct {
		name string
		req  RegisterStudentRequest
	}{
		{"bad email", RegisterStudentRequest{Name: "A", Email: "nope", Password: "password1", StudentNumber: "1"}},
		{"short password", RegisterStudentRequest{Name: "A", Email: "a@uni.edu", Password: "pass", StudentNumber: "1"}},
		{"long student number", RegisterStudentRequest{Name: "A", Email: "a@uni.edu", Password: "password1", StudentNumber: "1234567890"}},
		{"missing student number", RegisterStudentRequest{Name: "A", Email: "a@uni.edu", Password: "password1"}},
		{"missing name", RegisterStudentRequest{Email: "a@uni.edu", Password: "password1", StudentNumber: "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterStudent(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLoginStudent_InvalidCredentials(t *testing.T) {
	svc, store, _ := newService(t)
	store.AddStudent(domain.Student{Email: "ada@uni.edu", PasswordHash: hash(t, "password1")})

	_, err := svc.LoginStudent(context.Background(), &LoginRequest{Email: "ada@uni.edu", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginStudent(context.Background(), &LoginRequest{Email: "bob@uni.edu", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginProfessor(t *testing.T) {
	svc, store, tokens := newService(t)
	p := store.AddProfessor(domain.Professor{Name: "Dr. Smith", Email: "smith@uni.edu", PasswordHash: hash(t, "professor1")})

	session, err := svc.LoginProfessor(context.Background(), &LoginRequest{Email: "smith@uni.edu", Password: "professor1"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, session.UserID)

	claims, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, jwtauth.RoleProfessor, claims.Role)

	_, err = svc.LoginProfessor(context.Background(), &LoginRequest{Email: "smith@uni.edu", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAdmin(t *testing.T) {
	svc, _, tokens := newService(t)

	session, err := svc.LoginAdmin(context.Background(), &LoginRequest{Email: "admin@uni.edu", Password: "admin-password"})
	require.NoError(t, err)
	assert.Equal(t, AdminID("admin@uni.edu"), session.UserID)

	claims, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, jwtauth.RoleAdmin, claims.Role)

	_, err = svc.LoginAdmin(context.Background(), &LoginRequest{Email: "other@uni.edu", Password: "admin-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginAdmin(context.Background(), &LoginRequest{Email: "admin@uni.edu", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
