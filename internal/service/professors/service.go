package professors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/office-hours-service/internal/domain"
	professorRepo "github.com/m04kA/office-hours-service/internal/infra/storage/professor"
)

// Service профили преподавателей, часы приёма и флаг доступности
type Service struct {
	professorRepo ProfessorRepository
	validate      *validator.Validate
	logger        Logger
}

// NewService создает новый экземпляр сервиса преподавателей
func NewService(professorRepo ProfessorRepository, logger Logger) *Service {
	return &Service{
		professorRepo: professorRepo,
		validate:      validator.New(),
		logger:        logger,
	}
}

// List все преподаватели, по имени
func (s *Service) List(ctx context.Context) ([]*domain.Professor, error) {
	list, err := s.professorRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Get профиль преподавателя
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Professor, error) {
	professor, err := s.professorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repositoryError("Get", id, err)
	}
	return professor, nil
}

// UpdateOfficeHours заменяет недельное расписание преподавателя.
// Неполные и перевёрнутые интервалы отклоняются, пустые дни удаляются.
func (s *Service) UpdateOfficeHours(ctx context.Context, professorID uuid.UUID, hours domain.WeeklyAvailability) (*domain.WeeklyAvailability, error) {
	s.logger.Info("UpdateOfficeHours: professor=%s", professorID)

	if err := hours.Validate(); err != nil {
		s.logger.Warn("UpdateOfficeHours: invalid office hours for professor=%s: %v", professorID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidOfficeHours, err)
	}

	normalized := hours.Normalize()
	if err := s.professorRepo.UpdateOfficeHours(ctx, professorID, normalized); err != nil {
		return nil, s.repositoryError("UpdateOfficeHours", professorID, err)
	}

	s.logger.Info("UpdateOfficeHours: office hours updated for professor=%s", professorID)
	return &normalized, nil
}

// ToggleAvailability переключает флаг доступности и возвращает новое значение
func (s *Service) ToggleAvailability(ctx context.Context, professorID uuid.UUID) (bool, error) {
	available, err := s.professorRepo.ToggleAvailability(ctx, professorID)
	if err != nil {
		return false, s.repositoryError("ToggleAvailability", professorID, err)
	}

	s.logger.Info("ToggleAvailability: professor=%s available=%t", professorID, available)
	return available, nil
}

// AddProfessor создаёт преподавателя с часами приёма по умолчанию (пн-пт 10:00-13:00)
func (s *Service) AddProfessor(ctx context.Context, req *AddProfessorRequest) (*domain.Professor, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("AddProfessor: email=%s", req.Email)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("AddProfessor: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("AddProfessor: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: AddProfessor - hash password: %v", ErrInternal, err)
	}

	professor := &domain.Professor{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: string(hash),
		Image:        req.Image,
		Department:   req.Department,
		About:        req.About,
		Available:    true,
		OfficeHours:  domain.DefaultWeeklyAvailability(),
	}

	if err := s.professorRepo.Create(ctx, professor); err != nil {
		if errors.Is(err, professorRepo.ErrEmailTaken) {
			s.logger.Warn("AddProfessor: email %s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("AddProfessor: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddProfessor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddProfessor: created professor id=%s", professor.ID)
	return professor, nil
}

func (s *Service) repositoryError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, professorRepo.ErrProfessorNotFound) {
		s.logger.Warn("%s: professor id=%s not found", op, id)
		return ErrProfessorNotFound
	}
	s.logger.Error("%s: repository error for professor id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
