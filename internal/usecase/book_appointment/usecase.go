package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
	ledgerRepo "github.com/m04kA/office-hours-service/internal/infra/storage/ledger"
	professorRepo "github.com/m04kA/office-hours-service/internal/infra/storage/professor"
	studentRepo "github.com/m04kA/office-hours-service/internal/infra/storage/student"
	"github.com/m04kA/office-hours-service/internal/slots"
	"github.com/m04kA/office-hours-service/pkg/types"
)

// Options часовой пояс и горизонт записи
type Options struct {
	Location *time.Location
	MaxDays  int
}

// UseCase use case записи студента на приём
type UseCase struct {
	studentRepo     StudentRepository
	professorRepo   ProfessorRepository
	appointmentRepo AppointmentRepository
	ledgerRepo      LedgerRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	opts            Options
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	studentRepo StudentRepository,
	professorRepo ProfessorRepository,
	appointmentRepo AppointmentRepository,
	ledgerRepo LedgerRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = domain.MaxHorizonDays
	}
	return &UseCase{
		studentRepo:     studentRepo,
		professorRepo:   professorRepo,
		appointmentRepo: appointmentRepo,
		ledgerRepo:      ledgerRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		opts:            opts,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case записи на приём.
// Занятие слота и создание записи выполняются в одной транзакции;
// от двойной записи защищает условная вставка в реестр слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: student=%s, professor=%s, date=%s, time=%s",
		req.StudentID, req.ProfessorID, types.NewDateKey(req.Date), req.Time)

	appointment, err := uc.book(ctx, req)
	uc.metrics.ObserveBooking(bookingResult(err))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: created appointment id=%s for %s %s",
		appointment.ID, appointment.DateKey(), appointment.Time)

	// Ошибка публикации не отменяет запись
	if err := uc.notifier.AppointmentBooked(ctx, appointment); err != nil {
		uc.logger.Error("BookAppointment: failed to publish booked event for appointment id=%s: %v",
			appointment.ID, err)
	}

	return &Response{Appointment: appointment}, nil
}

func (uc *UseCase) book(ctx context.Context, req *Request) (*domain.Appointment, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время и день приёма в часовом поясе расписания
	now := uc.timeProvider.Now().In(uc.opts.Location)
	y, m, d := req.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, uc.opts.Location)

	if err := validateHorizon(day, now, uc.opts.MaxDays); err != nil {
		uc.logger.Warn("BookAppointment: %v", err)
		return nil, err
	}

	// 3. Получаем студента
	student, err := uc.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			uc.logger.Warn("BookAppointment: student id=%s not found", req.StudentID)
			return nil, ErrStudentNotFound
		}
		uc.logger.Error("BookAppointment: failed to get student id=%s: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: failed to get student: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 4. Проверки и запись выполняются в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем преподавателя: флаг и расписание могли измениться после показа слотов
		professor, err := uc.professorRepo.GetByID(txCtx, req.ProfessorID)
		if err != nil {
			if errors.Is(err, professorRepo.ErrProfessorNotFound) {
				uc.logger.Warn("BookAppointment: professor id=%s not found", req.ProfessorID)
				return ErrProfessorNotFound
			}
			uc.logger.Error("BookAppointment: failed to get professor id=%s: %v", req.ProfessorID, err)
			return fmt.Errorf("%w: failed to get professor: %v", ErrInternal, err)
		}

		if !professor.Available {
			uc.logger.Warn("BookAppointment: professor id=%s is not available", professor.ID)
			return ErrProfessorUnavailable
		}

		// 4.2. Время должно быть слотом из часов приёма и ещё не закончиться
		slot, ok := slots.Find(professor.OfficeHours, now, day, req.Time)
		if !ok || !slot.IsAvailable {
			uc.logger.Warn("BookAppointment: %s %s is not an open slot of professor id=%s",
				types.NewDateKey(day), req.Time, professor.ID)
			return fmt.Errorf("%w: %s %s", ErrSlotNotOffered, types.NewDateKey(day), req.Time)
		}

		appointment := &domain.Appointment{
			ID:          uuid.New(),
			StudentID:   student.ID,
			ProfessorID: professor.ID,
			Date:        day,
			Time:        slot.StartTime,
			Status:      domain.StatusBooked,
			Student:     student.Snapshot(),
			Professor:   professor.Snapshot(),
		}

		// 4.3. Атомарно занимаем слот
		err = uc.ledgerRepo.Reserve(txCtx, domain.BookedSlot{
			ProfessorID:   professor.ID,
			Date:          day,
			Time:          slot.StartTime,
			AppointmentID: appointment.ID,
		})
		if err != nil {
			if errors.Is(err, ledgerRepo.ErrAlreadyBooked) {
				uc.logger.Warn("BookAppointment: slot %s %s of professor id=%s already taken",
					types.NewDateKey(day), slot.StartTime, professor.ID)
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to reserve slot: %v", err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		// 4.4. Сохраняем запись
		if err := uc.appointmentRepo.Create(txCtx, appointment); err != nil {
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = appointment
		return nil
	})
	if err != nil {
		if isKnown(err) {
			return nil, err
		}
		uc.logger.Error("BookAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	return result, nil
}

func isKnown(err error) bool {
	for _, known := range []error{
		ErrStudentNotFound,
		ErrProfessorNotFound,
		ErrProfessorUnavailable,
		ErrSlotNotOffered,
		ErrSlotTaken,
		ErrInvalidInput,
		ErrInternal,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

func bookingResult(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrSlotTaken):
		return resultSlotTaken
	case errors.Is(err, ErrProfessorUnavailable):
		return resultUnavailable
	case errors.Is(err, ErrSlotNotOffered):
		return resultNotOffered
	case errors.Is(err, ErrStudentNotFound), errors.Is(err, ErrProfessorNotFound):
		return resultNotFound
	case errors.Is(err, ErrInvalidInput):
		return resultInvalid
	default:
		return resultInternalError
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}
