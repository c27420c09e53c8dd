package update_office_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/api/middleware"
	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/service/professors"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOfficeHours = "некорректные часы приёма: нужны начало и конец в формате HH:MM, начало раньше конца"
	msgUnauthorized       = "требуется авторизация"
	msgProfessorNotFound  = "преподаватель не найден"
)

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

// Handle PUT /api/v1/professors/me/office-hours
//
// Тело: {"monday": {"start": "10:00", "end": "13:00"}, "tuesday": null, ...}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var hours domain.WeeklyAvailability
	if err := handlers.DecodeJSON(r, &hours); err != nil {
		h.logger.Warn("PUT /professors/me/office-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateOfficeHours(r.Context(), professorID, hours)
	if err != nil {
		switch {
		case errors.Is(err, professors.ErrInvalidOfficeHours):
			h.logger.Warn("PUT /professors/me/office-hours - Invalid office hours: professor_id=%s, error=%v", professorID, err)
			handlers.RespondBadRequest(w, msgInvalidOfficeHours)

		case errors.Is(err, professors.ErrProfessorNotFound):
			handlers.RespondNotFound(w, msgProfessorNotFound)

		default:
			h.logger.Error("PUT /professors/me/office-hours - Failed to update: professor_id=%s, error=%v", professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professors/me/office-hours - Updated: professor_id=%s", professorID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
