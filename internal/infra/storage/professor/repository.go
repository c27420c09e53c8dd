package professor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/internal/infra/storage"
	"github.com/m04kA/office-hours-service/pkg/dbmetrics"
	"github.com/m04kA/office-hours-service/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"image",
	"department",
	"about",
	"available",
	"office_hours",
	"created_at",
	"updated_at",
}

// Repository репозиторий преподавателей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория преподавателей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет нового преподавателя. ID и временные метки заполняются в БД.
func (r *Repository) Create(ctx context.Context, p *domain.Professor) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("professors").
		Columns("id", "name", "email", "password_hash", "image", "department", "about", "available", "office_hours").
		Values(p.ID, p.Name, p.Email, p.PasswordHash, p.Image, p.Department, p.About, p.Available, p.OfficeHours).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt)
	if storage.IsUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает преподавателя по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professor, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает преподавателя по email (для входа)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Professor, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": email})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Professor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("professors").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	p, err := scanProfessor(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfessorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan professor: %v", ErrScanRow, op, err)
	}

	return p, nil
}

// List возвращает всех преподавателей, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Professor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("professors").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professors := make([]*domain.Professor, 0)
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan professor: %v", ErrScanRow, err)
		}
		professors = append(professors, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return professors, nil
}

// UpdateOfficeHours заменяет недельное расписание приёма целиком
func (r *Repository) UpdateOfficeHours(ctx context.Context, id uuid.UUID, hours domain.WeeklyAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professors").
		Set("office_hours", hours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateOfficeHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateOfficeHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateOfficeHours - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrProfessorNotFound
	}

	return nil
}

// ToggleAvailability инвертирует флаг доступности одним запросом и возвращает новое значение
func (r *Repository) ToggleAvailability(ctx context.Context, id uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professors").
		Set("available", squirrel.Expr("NOT available")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING available").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ToggleAvailability - build update query: %v", ErrBuildQuery, err)
	}

	var available bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrProfessorNotFound
	}
	if err != nil {
		return false, fmt.Errorf("%w: ToggleAvailability - execute update: %v", ErrExecQuery, err)
	}

	return available, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfessor(row rowScanner) (*domain.Professor, error) {
	var p domain.Professor
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.PasswordHash,
		&p.Image,
		&p.Department,
		&p.About,
		&p.Available,
		&p.OfficeHours,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
