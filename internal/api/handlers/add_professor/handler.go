package add_professor

import (
	"errors"
	"net/http"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/service/professors"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные преподавателя"
	msgEmailTaken         = "email уже зарегистрирован"
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

// Handle POST /api/v1/admin/professors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddProfessorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/professors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	professor, err := h.service.AddProfessor(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, professors.ErrInvalidInput):
			h.logger.Warn("POST /admin/professors - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, professors.ErrEmailTaken):
			h.logger.Warn("POST /admin/professors - Email taken: %s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /admin/professors - Failed to add professor: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/professors - Professor added: professor_id=%s", professor.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromProfessor(professor))
}
