package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/office-hours-service/internal/domain"
	"github.com/m04kA/office-hours-service/pkg/dbmetrics"
	"github.com/m04kA/office-hours-service/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"student_id",
	"professor_id",
	"slot_date",
	"slot_time",
	"status",
	"student_snapshot",
	"professor_snapshot",
	"created_at",
	"cancelled_at",
	"completed_at",
}

// Repository репозиторий записей на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись в статусе booked
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"student_id",
			"professor_id",
			"slot_date",
			"slot_time",
			"status",
			"student_snapshot",
			"professor_snapshot",
		).
		Values(
			a.ID,
			a.StudentID,
			a.ProfessorID,
			a.Date.Format(domain.DateFormat),
			a.Time,
			a.Status,
			a.Student,
			a.Professor,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// ListByStudent возвращает записи студента, новые первыми
func (r *Repository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListByStudent", squirrel.Eq{"student_id": studentID}, "created_at DESC")
}

// ListByProfessor возвращает записи к преподавателю, новые первыми
func (r *Repository) ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListByProfessor", squirrel.Eq{"professor_id": professorID}, "created_at DESC")
}

// ListAll возвращает все записи сервиса, новые первыми
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListAll", nil, "created_at DESC")
}

// ListBookedBetween возвращает активные записи с датой приёма в [from, to]
func (r *Repository) ListBookedBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	where := squirrel.And{
		squirrel.Eq{"status": domain.StatusBooked},
		squirrel.GtOrEq{"slot_date": from.Format(domain.DateFormat)},
		squirrel.LtOrEq{"slot_date": to.Format(domain.DateFormat)},
	}
	return r.list(ctx, "ListBookedBetween", where, "slot_date ASC, slot_time ASC")
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer, orderBy string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("appointments").
		OrderBy(orderBy)
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

// Finalize переводит запись из booked в терминальный статус (cancelled или completed).
// Обновление условное: если запись уже не booked, возвращается ErrStatusConflict.
func (r *Repository) Finalize(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	update := psqlbuilder.Update("appointments").
		Set("status", status).
		Where(squirrel.Eq{"id": id, "status": domain.StatusBooked})

	switch status {
	case domain.StatusCancelled:
		update = update.Set("cancelled_at", at)
	case domain.StatusCompleted:
		update = update.Set("completed_at", at)
	default:
		return fmt.Errorf("%w: Finalize - unsupported status %q", ErrBuildQuery, status)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Finalize - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Finalize - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Finalize - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// ProfessorStats агрегаты для дашборда преподавателя
func (r *Repository) ProfessorStats(ctx context.Context, professorID uuid.UUID) (*domain.DashboardStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'completed')",
		"COUNT(*) FILTER (WHERE status = 'cancelled')",
		"COUNT(DISTINCT student_id)",
	).
		From("appointments").
		Where(squirrel.Eq{"professor_id": professorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ProfessorStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.DashboardStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalAppointments,
		&stats.CompletedAppointments,
		&stats.CancelledAppointments,
		&stats.UniqueStudents,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: ProfessorStats - scan stats: %v", ErrScanRow, err)
	}

	return &stats, nil
}

// SystemStats число преподавателей, студентов и записей одним запросом
func (r *Repository) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"(SELECT COUNT(*) FROM professors)",
		"(SELECT COUNT(*) FROM students)",
		"(SELECT COUNT(*) FROM appointments)",
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SystemStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.SystemStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.Professors,
		&stats.Students,
		&stats.Appointments,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: SystemStats - scan stats: %v", ErrScanRow, err)
	}

	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var cancelledAt, completedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.StudentID,
		&a.ProfessorID,
		&a.Date,
		&a.Time,
		&a.Status,
		&a.Student,
		&a.Professor,
		&a.CreatedAt,
		&cancelledAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}
	if !a.Status.IsValid() {
		return nil, fmt.Errorf("unknown appointment status %q", a.Status)
	}

	if cancelledAt.Valid {
		a.CancelledAt = &cancelledAt.Time
	}
	if completedAt.Valid {
		a.CompletedAt = &completedAt.Time
	}

	return &a, nil
}
