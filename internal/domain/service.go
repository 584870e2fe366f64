package domain

import (
	"time"

	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

// Service represents a training service offered by the gym (reference data)
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Trainer represents a trainer profile
type Trainer struct {
	ID        int64
	FullName  string
	Bio       *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TrainerService links a trainer to a service they offer.
// The (TrainerID, ServiceID) pair is the composite primary key, so a
// trainer cannot offer the same service twice.
type TrainerService struct {
	TrainerID int64
	ServiceID int64
}

// TrainerAvailability is one recurring weekly working window of a trainer.
// A trainer may have multiple, possibly overlapping, windows per day.
type TrainerAvailability struct {
	ID        int64
	TrainerID int64
	DayOfWeek int // Monday-origin index, see DayIndex
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}
