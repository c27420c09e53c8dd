package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	getFreeSlots "github.com/m04kA/office-hours-service/internal/usecase/get_free_slots"
	"github.com/m04kA/office-hours-service/pkg/types"
)

const (
	msgInvalidProfessorID = "некорректный ID преподавателя"
	msgInvalidFrom        = "некорректная дата начала, ожидается день_месяц_год"
	msgInvalidDays        = "некорректное количество дней"
	msgProfessorNotFound  = "преподаватель не найден"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professors/{professorId}/slots?from=19_10_2026&days=7
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professorID, err := handlers.PathUUID(r, "professorId")
	if err != nil {
		h.logger.Warn("GET /professors/{id}/slots - Invalid professor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessorID)
		return
	}

	req := &getFreeSlots.Request{ProfessorID: professorID}

	query := r.URL.Query()
	if raw := query.Get("from"); raw != "" {
		from, err := types.DateKey(raw).Date(time.UTC)
		if err != nil {
			h.logger.Warn("GET /professors/{id}/slots - Invalid from=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = &from
	}
	if raw := query.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /professors/{id}/slots - Invalid days=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrProfessorNotFound):
			h.logger.Warn("GET /professors/{id}/slots - Professor not found: professor_id=%s", professorID)
			handlers.RespondNotFound(w, msgProfessorNotFound)

		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /professors/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /professors/{id}/slots - Failed to get slots: professor_id=%s, error=%v", professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
