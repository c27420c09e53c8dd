package professor_dashboard

import (
	"net/http"
	"strconv"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/api/middleware"
)

const (
	msgUnauthorized  = "требуется авторизация"
	msgInvalidLatest = "некорректный параметр latest"
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

// Handle GET /api/v1/professors/me/dashboard?latest=5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	latest := 0
	if raw := r.URL.Query().Get("latest"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.logger.Warn("GET /professors/me/dashboard - Invalid latest=%q", raw)
			handlers.RespondBadRequest(w, msgInvalidLatest)
			return
		}
		latest = n
	}

	dashboard, err := h.service.Dashboard(r.Context(), professorID, latest)
	if err != nil {
		h.logger.Error("GET /professors/me/dashboard - Failed to build dashboard: professor_id=%s, error=%v", professorID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDashboard(dashboard))
}
