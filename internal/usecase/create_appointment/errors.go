package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceNotFound is returned when the requested service does not exist
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidInterval is returned when the computed end is not after the start
	ErrInvalidInterval = errors.New("create_appointment: end must be after start")

	// ErrTrainerNotAvailable is returned when no availability window of the
	// trainer covers the requested interval on that day
	ErrTrainerNotAvailable = errors.New("create_appointment: trainer not available")

	// ErrSlotConflict is returned when an active appointment of the trainer
	// overlaps the requested interval
	ErrSlotConflict = errors.New("create_appointment: conflicting appointment exists")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned on unexpected usecase failures
	ErrInternal = errors.New("create_appointment: internal error")
)

// NotAvailableError carries the Turkish day name of the requested date so
// the boundary can format the user-facing message. It matches
// ErrTrainerNotAvailable under errors.Is.
type NotAvailableError struct {
	DayName string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("%v (day: %s)", ErrTrainerNotAvailable, e.DayName)
}

// Unwrap makes errors.Is(err, ErrTrainerNotAvailable) hold
func (e *NotAvailableError) Unwrap() error {
	return ErrTrainerNotAvailable
}
