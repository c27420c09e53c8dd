package register_student

import (
	"errors"
	"net/http"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные: нужны имя, email, пароль от 8 символов и номер студенческого до 9 символов"
	msgEmailTaken         = "email уже зарегистрирован"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/students/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterStudentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /students/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.RegisterStudent(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /students/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /students/register - Email taken")
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /students/register - Failed to register: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /students/register - Student registered: student_id=%s", session.UserID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSession(session))
}
