package login

import (
	"context"

	"github.com/m04kA/office-hours-service/internal/service/auth"
)

type AuthService interface {
	LoginStudent(ctx context.Context, req *auth.LoginRequest) (*auth.Session, error)
	LoginProfessor(ctx context.Context, req *auth.LoginRequest) (*auth.Session, error)
	LoginAdmin(ctx context.Context, req *auth.LoginRequest) (*auth.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
