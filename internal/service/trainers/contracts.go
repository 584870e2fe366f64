package trainers

import (
	"context"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
)

// TrainerRepository is the trainers storage interface
type TrainerRepository interface {
	Create(ctx context.Context, t *domain.Trainer) (*domain.Trainer, error)
	GetByID(ctx context.Context, id int64) (*domain.Trainer, error)
	ListAll(ctx context.Context) ([]*domain.Trainer, error)
	GetServiceIDs(ctx context.Context, trainerID int64) ([]int64, error)
	ReplaceServices(ctx context.Context, trainerID int64, serviceIDs []int64) error
	Update(ctx context.Context, t *domain.Trainer) error
	Delete(ctx context.Context, id int64) error
}

// ServiceRepository is the services storage interface
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager runs functions inside a database transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
