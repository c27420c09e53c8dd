package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/office-hours-service/internal/api/handlers"
	"github.com/m04kA/office-hours-service/internal/api/middleware"
	bookAppointment "github.com/m04kA/office-hours-service/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidProfessorID   = "некорректный ID преподавателя"
	msgInvalidDate          = "некорректная дата, ожидается день_месяц_год"
	msgInvalidTime          = "некорректное время, ожидается HH:MM"
	msgUnauthorized         = "требуется авторизация"
	msgStudentNotFound      = "студент не найден"
	msgProfessorNotFound    = "преподаватель не найден"
	msgProfessorUnavailable = "преподаватель сейчас не принимает записи"
	msgSlotNotOffered       = "выбранное время не входит в часы приёма или уже прошло"
	msgSlotTaken            = "выбранный слот уже занят"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(studentID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidProfessorID):
			handlers.RespondBadRequest(w, msgInvalidProfessorID)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: student_id=%s, professor_id=%s, %s %s",
				studentID, req.ProfessorID, req.SlotDate, req.SlotTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrProfessorUnavailable):
			h.logger.Warn("POST /appointments - Professor unavailable: professor_id=%s", req.ProfessorID)
			handlers.RespondConflict(w, msgProfessorUnavailable)

		case errors.Is(err, bookAppointment.ErrSlotNotOffered):
			h.logger.Warn("POST /appointments - Slot not offered: professor_id=%s, %s %s",
				req.ProfessorID, req.SlotDate, req.SlotTime)
			handlers.RespondConflict(w, msgSlotNotOffered)

		case errors.Is(err, bookAppointment.ErrProfessorNotFound):
			h.logger.Warn("POST /appointments - Professor not found: professor_id=%s", req.ProfessorID)
			handlers.RespondNotFound(w, msgProfessorNotFound)

		case errors.Is(err, bookAppointment.ErrStudentNotFound):
			h.logger.Warn("POST /appointments - Student not found: student_id=%s", studentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to book: student_id=%s, professor_id=%s, error=%v",
				studentID, req.ProfessorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment booked: appointment_id=%s, student_id=%s",
		result.Appointment.ID, studentID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromAppointment(result.Appointment))
}
