package list_professors

import (
	"net/http"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
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

// Handle GET /api/v1/professors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professors, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /professors - Failed to list professors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]handlers.ProfessorJSON, 0, len(professors))
	for _, p := range professors {
		response = append(response, handlers.FromProfessor(p))
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}
