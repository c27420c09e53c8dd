package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
	appointmentRepo "github.com/m04kA/office-hours-service/internal/infra/storage/appointment"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

// Service жизненный цикл записей: отмена, завершение, списки и дашборд
type Service struct {
	appointmentRepo AppointmentRepository
	ledgerRepo      LedgerRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	ledgerRepo LedgerRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		ledgerRepo:      ledgerRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		timeProvider:    realTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Cancel отменяет запись и освобождает слот.
// Отменить может только студент или преподаватель, указанные в записи.
func (s *Service) Cancel(ctx context.Context, req *CancelRequest) (*domain.Appointment, error) {
	s.logger.Info("Cancel: appointment id=%s by %s=%s", req.AppointmentID, req.Role, req.RequesterID)

	if req.AppointmentID == uuid.Nil || req.RequesterID == uuid.Nil {
		return nil, fmt.Errorf("%w: appointment and requester ids are required", ErrInvalidInput)
	}

	appointment, err := s.get(ctx, "Cancel", req.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !canCancel(appointment, req.Role, req.RequesterID) {
		s.logger.Warn("Cancel: access denied for %s=%s to appointment id=%s", req.Role, req.RequesterID, appointment.ID)
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()
	if err := appointment.Cancel(now); err != nil {
		s.logger.Warn("Cancel: appointment id=%s is already %s", appointment.ID, appointment.Status)
		return nil, ErrAppointmentFinalized
	}

	// Смена статуса и освобождение слота в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.appointmentRepo.Finalize(txCtx, appointment.ID, domain.StatusCancelled, now); err != nil {
			return err
		}
		return s.ledgerRepo.Release(txCtx, domain.BookedSlot{
			ProfessorID:   appointment.ProfessorID,
			Date:          appointment.Date,
			Time:          appointment.Time,
			AppointmentID: appointment.ID,
		})
	})
	if err != nil {
		return nil, s.finalizeError("Cancel", appointment.ID, err)
	}

	s.metrics.ObserveCancellation(string(req.Role))
	s.logger.Info("Cancel: appointment id=%s cancelled, slot %s %s released",
		appointment.ID, appointment.DateKey(), appointment.Time)

	if err := s.notifier.AppointmentCancelled(ctx, appointment, string(req.Role)); err != nil {
		s.logger.Error("Cancel: failed to publish cancelled event for appointment id=%s: %v", appointment.ID, err)
	}

	return appointment, nil
}

// Complete отмечает приём состоявшимся. Слот остаётся занятым.
func (s *Service) Complete(ctx context.Context, req *CompleteRequest) (*domain.Appointment, error) {
	s.logger.Info("Complete: appointment id=%s by professor=%s", req.AppointmentID, req.ProfessorID)

	if req.AppointmentID == uuid.Nil || req.ProfessorID == uuid.Nil {
		return nil, fmt.Errorf("%w: appointment and professor ids are required", ErrInvalidInput)
	}

	appointment, err := s.get(ctx, "Complete", req.AppointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.ProfessorID != req.ProfessorID {
		s.logger.Warn("Complete: access denied for professor=%s to appointment id=%s", req.ProfessorID, appointment.ID)
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()
	if err := appointment.Complete(now); err != nil {
		s.logger.Warn("Complete: appointment id=%s is already %s", appointment.ID, appointment.Status)
		return nil, ErrAppointmentFinalized
	}

	if err := s.appointmentRepo.Finalize(ctx, appointment.ID, domain.StatusCompleted, now); err != nil {
		return nil, s.finalizeError("Complete", appointment.ID, err)
	}

	s.logger.Info("Complete: appointment id=%s completed", appointment.ID)
	return appointment, nil
}

// ListForStudent записи студента, новые первыми
func (s *Service) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Appointment, error) {
	s.logger.Info("ListForStudent: fetching appointments for student=%s", studentID)

	list, err := s.appointmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("ListForStudent: repository error for student=%s: %v", studentID, err)
		return nil, fmt.Errorf("%w: ListForStudent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForStudent: fetched %d appointments for student=%s", len(list), studentID)
	return list, nil
}

// ListForProfessor записи к преподавателю, новые первыми
func (s *Service) ListForProfessor(ctx context.Context, professorID uuid.UUID) ([]*domain.Appointment, error) {
	s.logger.Info("ListForProfessor: fetching appointments for professor=%s", professorID)

	list, err := s.appointmentRepo.ListByProfessor(ctx, professorID)
	if err != nil {
		s.logger.Error("ListForProfessor: repository error for professor=%s: %v", professorID, err)
		return nil, fmt.Errorf("%w: ListForProfessor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForProfessor: fetched %d appointments for professor=%s", len(list), professorID)
	return list, nil
}

// Dashboard счётчики преподавателя и последние записи
func (s *Service) Dashboard(ctx context.Context, professorID uuid.UUID, latest int) (*Dashboard, error) {
	if latest <= 0 {
		latest = DefaultDashboardLatest
	}

	var dashboard Dashboard
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		stats, err := s.appointmentRepo.ProfessorStats(txCtx, professorID)
		if err != nil {
			return err
		}
		list, err := s.appointmentRepo.ListByProfessor(txCtx, professorID)
		if err != nil {
			return err
		}
		dashboard.Stats = *stats
		dashboard.Latest = list[:min(latest, len(list))]
		return nil
	})
	if err != nil {
		s.logger.Error("Dashboard: repository error for professor=%s: %v", professorID, err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Dashboard: professor=%s total=%d unique students=%d",
		professorID, dashboard.Stats.TotalAppointments, dashboard.Stats.UniqueStudents)
	return &dashboard, nil
}

// ListAll все записи сервиса, новые первыми
func (s *Service) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	s.logger.Info("ListAll: fetching all appointments")

	list, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d appointments", len(list))
	return list, nil
}

// AdminDashboard общие счётчики и последние записи по всему сервису
func (s *Service) AdminDashboard(ctx context.Context, latest int) (*AdminDashboard, error) {
	if latest <= 0 {
		latest = DefaultDashboardLatest
	}

	var dashboard AdminDashboard
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		stats, err := s.appointmentRepo.SystemStats(txCtx)
		if err != nil {
			return err
		}
		list, err := s.appointmentRepo.ListAll(txCtx)
		if err != nil {
			return err
		}
		dashboard.Stats = *stats
		dashboard.Latest = list[:min(latest, len(list))]
		return nil
	})
	if err != nil {
		s.logger.Error("AdminDashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: AdminDashboard - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AdminDashboard: professors=%d students=%d appointments=%d",
		dashboard.Stats.Professors, dashboard.Stats.Students, dashboard.Stats.Appointments)
	return &dashboard, nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appointment, nil
}

func (s *Service) finalizeError(op string, id uuid.UUID, err error) error {
	// Статус успел измениться другим запросом
	if errors.Is(err, appointmentRepo.ErrStatusConflict) {
		s.logger.Warn("%s: appointment id=%s was finalized concurrently", op, id)
		return ErrAppointmentFinalized
	}
	s.logger.Error("%s: failed to finalize appointment id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - finalize: %v", ErrInternal, op, err)
}

func canCancel(a *domain.Appointment, role jwtauth.Role, requesterID uuid.UUID) bool {
	if !a.IsParticipant(requesterID) {
		return false
	}
	// участник отменяет только под своей ролью
	switch role {
	case jwtauth.RoleStudent:
		return requesterID == a.StudentID
	case jwtauth.RoleProfessor:
		return requesterID == a.ProfessorID
	default:
		return false
	}
}
