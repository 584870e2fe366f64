package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	"github.com/sportclub/SC-AppointmentService/pkg/dbmetrics"
	"github.com/sportclub/SC-AppointmentService/pkg/psqlbuilder"
)

const table = "trainer_availabilities"

var columns = []string{
	"id",
	"trainer_id",
	"day_of_week",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository data access for weekly availability windows
type Repository struct {
	db DBExecutor
}

// NewRepository creates an availability repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new availability window
func (r *Repository) Create(ctx context.Context, a *domain.TrainerAvailability) (*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("trainer_id", "day_of_week", "start_time", "end_time").
		Values(a.TrainerID, a.DayOfWeek, a.StartTime, a.EndTime).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID fetches an availability window by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan availability: %v", ErrScanRow, err)
	}

	return a, nil
}

// ListByTrainerAndDay fetches a trainer's windows for one Monday-origin
// day index, ordered by start time
func (r *Repository) ListByTrainerAndDay(ctx context.Context, trainerID int64, dayOfWeek int) ([]*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"trainer_id": trainerID, "day_of_week": dayOfWeek}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTrainerAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTrainerAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAvailabilities(rows)
}

// ListByDay fetches every trainer's windows for one Monday-origin day
// index. Used by the available-trainers query to evaluate all trainers
// in a single round trip.
func (r *Repository) ListByDay(ctx context.Context, dayOfWeek int) ([]*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		OrderBy("trainer_id ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAvailabilities(rows)
}

// ListAll fetches all windows joined with trainer names, ordered by
// trainer name, day and start time
func (r *Repository) ListAll(ctx context.Context) ([]*domain.TrainerAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.trainer_id",
		"a.day_of_week",
		"a.start_time",
		"a.end_time",
		"a.created_at",
		"a.updated_at",
	).
		From(table + " a").
		Join("trainers t ON t.id = a.trainer_id").
		OrderBy("t.full_name ASC", "a.day_of_week ASC", "a.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAvailabilities(rows)
}

// Update updates an availability window
func (r *Repository) Update(ctx context.Context, a *domain.TrainerAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("trainer_id", a.TrainerID).
		Set("day_of_week", a.DayOfWeek).
		Set("start_time", a.StartTime).
		Set("end_time", a.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

// Delete removes an availability window
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAvailabilityNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*domain.TrainerAvailability, error) {
	var a domain.TrainerAvailability
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.TrainerID,
		&a.DayOfWeek,
		&a.StartTime,
		&a.EndTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func scanAvailabilities(rows *sql.Rows) ([]*domain.TrainerAvailability, error) {
	windows := make([]*domain.TrainerAvailability, 0)

	for rows.Next() {
		a, err := scanAvailability(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAvailabilities - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAvailabilities - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
