package get_available_trainers

import (
	"context"

	findAvailableTrainers "github.com/sportclub/SC-AppointmentService/internal/usecase/find_available_trainers"
)

type FindAvailableTrainersUseCase interface {
	Execute(ctx context.Context, req *findAvailableTrainers.Request) (*findAvailableTrainers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
