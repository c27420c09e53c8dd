package register_student

import (
	"context"

	"github.com/m04kA/office-hours-service/internal/service/auth"
)

type AuthService interface {
	RegisterStudent(ctx context.Context, req *auth.RegisterStudentRequest) (*auth.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
