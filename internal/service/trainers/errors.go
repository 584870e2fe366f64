package trainers

import "errors"

var (
	// ErrTrainerNotFound is returned when the trainer does not exist
	ErrTrainerNotFound = errors.New("trainer not found")

	// ErrServiceNotFound is returned when an assigned service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
