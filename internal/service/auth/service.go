package auth

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
	studentRepo "github.com/m04kA/office-hours-service/internal/infra/storage/student"
	"github.com/m04kA/office-hours-service/pkg/jwtauth"
)

// Service регистрация студентов и вход для всех ролей
type Service struct {
	studentRepo   StudentRepository
	professorRepo ProfessorRepository
	tokens        TokenIssuer
	admin         AdminCredentials
	validate      *validator.Validate
	logger        Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	studentRepo StudentRepository,
	professorRepo ProfessorRepository,
	tokens TokenIssuer,
	admin AdminCredentials,
	logger Logger,
) *Service {
	admin.Email = normalizeEmail(admin.Email)
	return &Service{
		studentRepo:   studentRepo,
		professorRepo: professorRepo,
		tokens:        tokens,
		admin:         admin,
		validate:      validator.New(),
		logger:        logger,
	}
}

// RegisterStudent создаёт студента и сразу выпускает токен
func (s *Service) RegisterStudent(ctx context.Context, req *RegisterStudentRequest) (*Session, error) {
	req.Email = normalizeEmail(req.Email)
	req.StudentNumber = strings.TrimSpace(req.StudentNumber)
	s.logger.Info("RegisterStudent: email=%s", req.Email)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("RegisterStudent: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("RegisterStudent: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: RegisterStudent - hash password: %v", ErrInternal, err)
	}

	student := &domain.Student{
		Name:          strings.TrimSpace(req.Name),
		Email:         req.Email,
		PasswordHash:  string(hash),
		StudentNumber: req.StudentNumber,
		Phone:         req.Phone,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, studentRepo.ErrEmailTaken) {
			s.logger.Warn("RegisterStudent: email %s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("RegisterStudent: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterStudent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterStudent: created student id=%s", student.ID)
	return s.issue("RegisterStudent", student.ID, jwtauth.RoleStudent, student.Email)
}

// LoginStudent вход студента
func (s *Service) LoginStudent(ctx context.Context, req *LoginRequest) (*Session, error) {
	if err := s.validateLogin("LoginStudent", req); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, studentRepo.ErrStudentNotFound) {
			s.logger.Warn("LoginStudent: unknown email %s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("LoginStudent: repository error: %v", err)
		return nil, fmt.Errorf("%w: LoginStudent - repository error: %v", ErrInternal, err)
	}

	if err := checkPassword(student.PasswordHash, req.Password); err != nil {
		s.logger.Warn("LoginStudent: wrong password for %s", req.Email)
		return nil, err
	}

	return s.issue("LoginStudent", student.ID, jwtauth.RoleStudent, student.Email)
}

// LoginProfessor вход преподавателя
func (s *Service) LoginProfessor(ctx context.Context, req *LoginRequest) (*Session, error) {
	if err := s.validateLogin("LoginProfessor", req); err != nil {
		return nil, err
	}

	professor, err := s.professorRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, professorRepo.ErrProfessorNotFound) {
			s.logger.Warn("LoginProfessor: unknown email %s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("LoginProfessor: repository error: %v", err)
		return nil, fmt.Errorf("%w: LoginProfessor - repository error: %v", ErrInternal, err)
	}

	if err := checkPassword(professor.PasswordHash, req.Password); err != nil {
		s.logger.Warn("LoginProfessor: wrong password for %s", req.Email)
		return nil, err
	}

	return s.issue("LoginProfessor", professor.ID, jwtauth.RoleProfessor, professor.Email)
}

// LoginAdmin вход администратора по учётной записи из конфигурации
func (s *Service) LoginAdmin(ctx context.Context, req *LoginRequest) (*Session, error) {
	if err := s.validateLogin("LoginAdmin", req); err != nil {
		return nil, err
	}

	if s.admin.Email == "" || s.admin.PasswordHash == "" || req.Email != s.admin.Email {
		s.logger.Warn("LoginAdmin: rejected login for %s", req.Email)
		return nil, ErrInvalidCredentials
	}

	if err := checkPassword(s.admin.PasswordHash, req.Password); err != nil {
		s.logger.Warn("LoginAdmin: wrong password for %s", req.Email)
		return nil, err
	}

	return s.issue("LoginAdmin", AdminID(s.admin.Email), jwtauth.RoleAdmin, s.admin.Email)
}

// AdminID стабильный идентификатор администратора, которого нет в БД
func AdminID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("admin:"+normalizeEmail(email)))
}

func (s *Service) validateLogin(op string, req *LoginRequest) error {
	req.Email = normalizeEmail(req.Email)
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("%s: validation failed: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *Service) issue(op string, id uuid.UUID, role jwtauth.Role, email string) (*Session, error) {
	token, err := s.tokens.Issue(id.String(), role, email)
	if err != nil {
		s.logger.Error("%s: failed to issue token: %v", op, err)
		return nil, fmt.Errorf("%w: %s - issue token: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: issued %s token for id=%s", op, role, id)
	return &Session{Token: token, UserID: id, Role: role}, nil
}

func checkPassword(hash, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
