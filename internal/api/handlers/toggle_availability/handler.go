package toggle_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/api/middleware"
	"github.com/m04kA/office-hours-service/internal/service/professors"
)

const (
	msgInvalidProfessorID = "некорректный ID преподавателя"
	msgUnauthorized       = "требуется авторизация"
	msgProfessorNotFound  = "преподаватель не найден"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ProfessorID string `json:"professorId"`
	Available   bool   `json:"available"`
}

type Handler struct {
	service ProfessorService
	logger  Logger
}

func NewHandler(service ProfessorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/professors/me/availability (преподаватель)
// и POST /api/v1/admin/professors/{professorId}/availability (администратор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if _, byAdmin := mux.Vars(r)["professorId"]; byAdmin {
		id, err := handlers.PathUUID(r, "professorId")
		if err != nil {
			h.logger.Warn("POST %s - Invalid professor ID: %v", r.URL.Path, err)
			handlers.RespondBadRequest(w, msgInvalidProfessorID)
			return
		}
		professorID = id
	}

	available, err := h.service.ToggleAvailability(r.Context(), professorID)
	if err != nil {
		if errors.Is(err, professors.ErrProfessorNotFound) {
			h.logger.Warn("POST %s - Professor not found: professor_id=%s", r.URL.Path, professorID)
			handlers.RespondNotFound(w, msgProfessorNotFound)
			return
		}
		h.logger.Error("POST %s - Failed to toggle availability: professor_id=%s, error=%v", r.URL.Path, professorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST %s - Availability toggled: professor_id=%s, available=%t", r.URL.Path, professorID, available)
	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		ProfessorID: professorID.String(),
		Available:   available,
	})
}
