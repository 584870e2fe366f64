package availability

import (
	"context"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
)

// AvailabilityRepository is the availability windows storage interface
type AvailabilityRepository interface {
	Create(ctx context.Context, a *domain.TrainerAvailability) (*domain.TrainerAvailability, error)
	GetByID(ctx context.Context, id int64) (*domain.TrainerAvailability, error)
	ListByTrainerAndDay(ctx context.Context, trainerID int64, dayOfWeek int) ([]*domain.TrainerAvailability, error)
	ListAll(ctx context.Context) ([]*domain.TrainerAvailability, error)
	Update(ctx context.Context, a *domain.TrainerAvailability) error
	Delete(ctx context.Context, id int64) error
}

// TrainerRepository is the trainers storage interface
type TrainerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Trainer, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
