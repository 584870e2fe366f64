package trainer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	"github.com/sportclub/SC-AppointmentService/pkg/dbmetrics"
	"github.com/sportclub/SC-AppointmentService/pkg/psqlbuilder"
)

const (
	table     = "trainers"
	joinTable = "trainer_services"
)

var columns = []string{
	"id",
	"full_name",
	"bio",
	"created_at",
	"updated_at",
}

// Repository data access for trainers and their service assignments
type Repository struct {
	db DBExecutor
}

// NewRepository creates a trainer repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new trainer
func (r *Repository) Create(ctx context.Context, t *domain.Trainer) (*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("full_name", "bio").
		Values(t.FullName, t.Bio).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID fetches a trainer by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTrainer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan trainer: %v", ErrScanRow, err)
	}

	return t, nil
}

// ListAll fetches all trainers ordered by full name, ties broken by id,
// so the result order is total and stable
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("full_name ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTrainers(rows)
}

// ListByService fetches trainers offering the given service, in the same
// stable name order as ListAll
func (r *Repository) ListByService(ctx context.Context, serviceID int64) ([]*domain.Trainer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"t.id",
		"t.full_name",
		"t.bio",
		"t.created_at",
		"t.updated_at",
	).
		From(table+" t").
		Join(joinTable+" ts ON ts.trainer_id = t.id").
		Where(squirrel.Eq{"ts.service_id": serviceID}).
		OrderBy("t.full_name ASC", "t.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTrainers(rows)
}

// HasService reports whether a trainer_services link exists
func (r *Repository) HasService(ctx context.Context, trainerID, serviceID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(joinTable).
		Where(squirrel.Eq{"trainer_id": trainerID, "service_id": serviceID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasService - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasService - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetServiceIDs fetches the ids of the services a trainer offers
func (r *Repository) GetServiceIDs(ctx context.Context, trainerID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("service_id").
		From(joinTable).
		Where(squirrel.Eq{"trainer_id": trainerID}).
		OrderBy("service_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetServiceIDs - scan service_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServiceIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// ReplaceServices replaces the trainer's service assignments with the
// given set. Meant to run inside a transaction so the delete and inserts
// are atomic.
func (r *Repository) ReplaceServices(ctx context.Context, trainerID int64, serviceIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(joinTable).
		Where(squirrel.Eq{"trainer_id": trainerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceServices - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceServices - execute delete: %v", ErrExecQuery, err)
	}

	if len(serviceIDs) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(joinTable).Columns("trainer_id", "service_id")
	for _, serviceID := range serviceIDs {
		insert = insert.Values(trainerID, serviceID)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Update updates a trainer's profile
func (r *Repository) Update(ctx context.Context, t *domain.Trainer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("full_name", t.FullName).
		Set("bio", t.Bio).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
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
		return ErrTrainerNotFound
	}

	return nil
}

// Delete removes a trainer
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
		return ErrTrainerNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrainer(row rowScanner) (*domain.Trainer, error) {
	var t domain.Trainer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.FullName,
		&t.Bio,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

func scanTrainers(rows *sql.Rows) ([]*domain.Trainer, error) {
	trainers := make([]*domain.Trainer, 0)

	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTrainers - scan row: %v", ErrScanRow, err)
		}
		trainers = append(trainers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTrainers - rows error: %v", ErrScanRow, err)
	}

	return trainers, nil
}
