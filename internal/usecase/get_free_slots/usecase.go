package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/office-hours-service/internal/domain"
	professorRepo "github.com/m04kA/office-hours-service/internal/infra/storage/professor"
	"github.com/m04kA/office-hours-service/internal/slots"
	"github.com/m04kA/office-hours-service/pkg/types"
)

// Options параметры горизонта и часового пояса
type Options struct {
	Location    *time.Location
	DefaultDays int
	MaxDays     int
}

// UseCase use case получения свободных слотов преподавателя
type UseCase struct {
	professorRepo ProfessorRepository
	ledgerRepo    LedgerRepository
	opts          Options
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	professorRepo ProfessorRepository,
	ledgerRepo LedgerRepository,
	opts Options,
	logger Logger,
) *UseCase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DefaultDays <= 0 {
		opts.DefaultDays = domain.DefaultHorizonDays
	}
	if opts.MaxDays < opts.DefaultDays {
		opts.MaxDays = max(domain.MaxHorizonDays, opts.DefaultDays)
	}
	return &UseCase{
		professorRepo: professorRepo,
		ledgerRepo:    ledgerRepo,
		opts:          opts,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Только чтение: безопасен для конкурентных и повторных вызовов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req, uc.opts.MaxDays); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.opts.Location)

	from := types.StartOfDay(now)
	if req.From != nil {
		y, m, d := req.From.Date()
		from = time.Date(y, m, d, 0, 0, 0, 0, uc.opts.Location)
	}

	days := req.Days
	if days == 0 {
		days = uc.opts.DefaultDays
	}
	to := from.AddDate(0, 0, days-1)

	uc.logger.Info("GetFreeSlots: professor=%s, from=%s, days=%d",
		req.ProfessorID, types.NewDateKey(from), days)

	professor, err := uc.professorRepo.GetByID(ctx, req.ProfessorID)
	if err != nil {
		if errors.Is(err, professorRepo.ErrProfessorNotFound) {
			uc.logger.Warn("GetFreeSlots: professor id=%s not found", req.ProfessorID)
			return nil, ErrProfessorNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get professor id=%s: %v", req.ProfessorID, err)
		return nil, fmt.Errorf("%w: failed to get professor: %v", ErrInternal, err)
	}

	booked, err := uc.ledgerRepo.Index(ctx, professor.ID, from, to)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to load booked slots for professor=%s: %v", professor.ID, err)
		return nil, fmt.Errorf("%w: failed to load booked slots: %v", ErrInternal, err)
	}

	result := slots.Generate(professor.OfficeHours, booked, now, from, days)

	uc.logger.Info("GetFreeSlots: generated %d days with slots for professor=%s", len(result), professor.ID)

	return &Response{
		ProfessorID:        professor.ID,
		ProfessorAvailable: professor.Available,
		From:               from,
		Days:               result,
	}, nil
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}
