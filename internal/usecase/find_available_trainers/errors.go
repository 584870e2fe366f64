package find_available_trainers

import "errors"

var (
	// ErrServiceNotFound is returned when the requested service does not
	// exist; no trainers are evaluated in that case
	ErrServiceNotFound = errors.New("find_available_trainers: service not found")

	// ErrInvalidInterval is returned when the computed end is not after the start
	ErrInvalidInterval = errors.New("find_available_trainers: end must be after start")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("find_available_trainers: invalid input data")

	// ErrInternal is returned on unexpected usecase failures
	ErrInternal = errors.New("find_available_trainers: internal error")
)
