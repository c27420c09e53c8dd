package login

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/service/auth"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "нужны email и пароль"
	msgInvalidCredentials = "неверный email или пароль"
)

type loginFunc func(ctx context.Context, req *auth.LoginRequest) (*auth.Session, error)

// Handler выполняет вход для одной роли: студента, преподавателя или администратора
type Handler struct {
	login  loginFunc
	route  string
	logger Logger
}

func NewHandler(service AuthService, role jwtauth.Role, logger Logger) *Handler {
	h := &Handler{logger: logger}
	switch role {
	case jwtauth.RoleStudent:
		h.login, h.route = service.LoginStudent, "/students/login"
	case jwtauth.RoleProfessor:
		h.login, h.route = service.LoginProfessor, "/professors/login"
	case jwtauth.RoleAdmin:
		h.login, h.route = service.LoginAdmin, "/admin/login"
	default:
		panic(fmt.Sprintf("login: unsupported role %q", role))
	}
	return h
}

// Handle POST /api/v1/{students|professors|admin}/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST %s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.login(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST %s - Invalid credentials", h.route)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST %s - Login failed: %v", h.route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST %s - Logged in: user_id=%s", h.route, session.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
