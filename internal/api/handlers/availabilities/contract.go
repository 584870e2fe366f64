package availabilities

import (
	"context"

	"github.com/sportclub/SC-AppointmentService/internal/service/availability/models"
)

type AvailabilityService interface {
	Create(ctx context.Context, req *models.CreateAvailabilityRequest) (*models.AvailabilityResponse, error)
	GetByID(ctx context.Context, id int64) (*models.AvailabilityResponse, error)
	GetAll(ctx context.Context) (*models.AvailabilityListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
