package trainer

import "errors"

var (
	// ErrTrainerNotFound is returned when the trainer does not exist
	ErrTrainerNotFound = errors.New("trainer.repository: trainer not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("trainer.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("trainer.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("trainer.repository: failed to scan row")
)
