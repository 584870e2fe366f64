package create_appointment

import (
	"time"

	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

// Request booking request of an authenticated member
type Request struct {
	TrainerID int64
	ServiceID int64
	UserID    int64
	Date      time.Time        // requested date (no time part)
	StartTime types.TimeString // requested time of day, e.g. "10:00"
}

// Response the created appointment
type Response struct {
	ID                    int64
	TrainerID             int64
	ServiceID             int64
	UserID                int64
	StartAt               time.Time
	EndAt                 time.Time
	Status                string
	StoredPrice           float64
	StoredDurationMinutes int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
