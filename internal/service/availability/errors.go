package availability

import "errors"

var (
	// ErrAvailabilityNotFound is returned when the availability window does not exist
	ErrAvailabilityNotFound = errors.New("availability not found")

	// ErrTrainerNotFound is returned when the trainer does not exist
	ErrTrainerNotFound = errors.New("trainer not found")

	// ErrInvalidTimeRange is returned when the window does not end after it starts
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
