package cancel_appointment

import "context"

type AppointmentService interface {
	Cancel(ctx context.Context, id int64, userID int64, isAdmin bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
