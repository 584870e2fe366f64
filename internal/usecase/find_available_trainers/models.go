package find_available_trainers

import (
	"time"

	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

// Request availability query for one service and slot
type Request struct {
	ServiceID int64
	Date      time.Time        // requested date (no time part)
	StartTime types.TimeString // requested time of day, e.g. "11:30"
}

// Response the trainers bookable for the slot
type Response struct {
	ServiceID int64
	StartAt   time.Time
	EndAt     time.Time
	Trainers  []Trainer
}

// Trainer one bookable trainer
type Trainer struct {
	ID       int64
	FullName string
}
