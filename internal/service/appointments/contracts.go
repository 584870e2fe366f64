package appointments

import (
	"context"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
)

// AppointmentRepository is the appointments storage interface
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Appointment, error)
	ListAll(ctx context.Context, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
