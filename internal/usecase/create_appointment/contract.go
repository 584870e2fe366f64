package create_appointment

import (
	"context"
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
)

// ServiceRepository is the slice of the service store needed here
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AvailabilityRepository is the slice of the schedule store needed here
type AvailabilityRepository interface {
	ListByTrainerAndDay(ctx context.Context, trainerID int64, dayOfWeek int) ([]*domain.TrainerAvailability, error)
}

// AppointmentRepository is the slice of the appointment store needed here
type AppointmentRepository interface {
	Create(ctx context.Context, ap *domain.Appointment) (*domain.Appointment, error)
	ListActiveOverlappingByTrainer(ctx context.Context, trainerID int64, start, end time.Time) ([]*domain.Appointment, error)
}

// TransactionManager runs the check-then-insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
