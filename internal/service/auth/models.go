package auth

import (
	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

// RegisterStudentRequest данные регистрации студента
type RegisterStudentRequest struct {
	Name          string `validate:"required"`
	Email         string `validate:"required,email"`
	Password      string `validate:"required,min=8"`
	StudentNumber string `validate:"required,max=9"`
	Phone         string
}

// LoginRequest учётные данные
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AdminCredentials учётная запись администратора из конфигурации
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

// Session выпущенный токен и его владелец
type Session struct {
	Token  string
	UserID uuid.UUID
	Role   jwtauth.Role
}
