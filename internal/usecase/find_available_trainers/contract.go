package find_available_trainers

import (
	"context"
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
)

// ServiceRepository is the slice of the service store needed here
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TrainerRepository is the slice of the trainer store needed here
type TrainerRepository interface {
	// ListByService returns the trainers eligible for the service,
	// ordered by full name then id
	ListByService(ctx context.Context, serviceID int64) ([]*domain.Trainer, error)
}

// AvailabilityRepository is the slice of the schedule store needed here
type AvailabilityRepository interface {
	ListByDay(ctx context.Context, dayOfWeek int) ([]*domain.TrainerAvailability, error)
}

// AppointmentRepository is the slice of the appointment store needed here
type AppointmentRepository interface {
	ListActiveOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Appointment, error)
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
