package list_appointments

import (
	"net/http"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/api/middleware"
	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgForbidden    = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/me/appointments и GET /api/v1/professors/me/appointments.
// Список выбирается по роли из токена, новые записи первыми.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	role, hasRole := middleware.GetRole(r.Context())
	if !ok || !hasRole {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var (
		appointments []*domain.Appointment
		err          error
	)
	switch role {
	case jwtauth.RoleStudent:
		appointments, err = h.service.ListForStudent(r.Context(), userID)
	case jwtauth.RoleProfessor:
		appointments, err = h.service.ListForProfessor(r.Context(), userID)
	default:
		handlers.RespondForbidden(w, msgForbidden)
		return
	}
	if err != nil {
		h.logger.Error("GET %s - Failed to list appointments: %s=%s, error=%v", r.URL.Path, role, userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointments(appointments))
}
