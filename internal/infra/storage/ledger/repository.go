// Package ledger хранит занятые слоты преподавателей.
//
// Каждая строка booked_slots соответствует одному занятому (professor, date, time).
// Первичный ключ по этой тройке делает Reserve атомарной операцией
// "вставить, только если ещё не занято" без блокировок на уровне приложения.
package ledger

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
	"github.com/m04kA/office-hours-service/pkg/types"
)

// Repository реестр занятых слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр реестра
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Reserve занимает слот за записью. Если слот уже занят, возвращает ErrAlreadyBooked.
func (r *Repository) Reserve(ctx context.Context, slot domain.BookedSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booked_slots").
		Columns("professor_id", "slot_date", "slot_time", "appointment_id").
		Values(slot.ProfessorID, slot.Date.Format(domain.DateFormat), slot.Time, slot.AppointmentID).
		Suffix("ON CONFLICT (professor_id, slot_date, slot_time) DO NOTHING RETURNING appointment_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reserve - build insert query: %v", ErrBuildQuery, err)
	}

	var reservedFor uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reservedFor)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAlreadyBooked
	}
	if err != nil {
		return fmt.Errorf("%w: Reserve - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Release освобождает слот, если он занят именно этой записью.
// Повторный вызов и вызов для чужого или свободного слота ничего не меняют.
func (r *Repository) Release(ctx context.Context, slot domain.BookedSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booked_slots").
		Where(squirrel.Eq{
			"professor_id":   slot.ProfessorID,
			"slot_date":      slot.Date.Format(domain.DateFormat),
			"slot_time":      slot.Time,
			"appointment_id": slot.AppointmentID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// Index возвращает занятые слоты преподавателя с датами в [from, to]
func (r *Repository) Index(ctx context.Context, professorID uuid.UUID, from, to time.Time) (domain.BookedSlotIndex, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_date", "slot_time").
		From("booked_slots").
		Where(squirrel.Eq{"professor_id": professorID}).
		Where(squirrel.GtOrEq{"slot_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"slot_date": to.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Index - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Index - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	index := make(domain.BookedSlotIndex)
	for rows.Next() {
		var date time.Time
		var slotTime types.TimeString
		if err := rows.Scan(&date, &slotTime); err != nil {
			return nil, fmt.Errorf("%w: Index - scan slot: %v", ErrScanRow, err)
		}
		index.Add(date, slotTime)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Index - rows error: %v", ErrScanRow, err)
	}

	return index, nil
}
