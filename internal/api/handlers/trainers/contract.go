package trainers

import (
	"context"

	"github.com/sportclub/SC-AppointmentService/internal/service/trainers/models"
)

type TrainerService interface {
	Create(ctx context.Context, req *models.CreateTrainerRequest) (*models.TrainerResponse, error)
	GetByID(ctx context.Context, id int64) (*models.TrainerResponse, error)
	GetAll(ctx context.Context) (*models.TrainerListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateTrainerRequest) (*models.TrainerResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
