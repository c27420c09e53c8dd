package admin_dashboard

import (
	"net/http"
	"strconv"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
)

const msgInvalidLatest = "некорректный параметр latest"

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

// Handle GET /api/v1/admin/dashboard?latest=5
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	latest := 0
	if raw := r.URL.Query().Get("latest"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.logger.Warn("GET /admin/dashboard - Invalid latest=%q", raw)
			handlers.RespondBadRequest(w, msgInvalidLatest)
			return
		}
		latest = n
	}

	dashboard, err := h.service.AdminDashboard(r.Context(), latest)
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDashboard(dashboard))
}
