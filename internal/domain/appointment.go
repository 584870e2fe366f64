package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked training session in the system
type Appointment struct {
	ID        int64
	TrainerID int64
	ServiceID int64
	UserID    int64
	StartAt   time.Time
	EndAt     time.Time
	Status    AppointmentStatus

	// Price and duration captured at booking time. Later edits to the
	// service must not change historical appointments.
	StoredPrice           float64
	StoredDurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment counts toward conflict checks
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// IsTerminal returns true if no further status transition is allowed
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// IsValid returns true if s is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may change from s to target.
// Pending may become Approved, Rejected or Cancelled; Approved may only be
// Cancelled; Rejected and Cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved || target == StatusRejected || target == StatusCancelled
	case StatusApproved:
		return target == StatusCancelled
	default:
		return false
	}
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ActiveStatuses are the statuses that count toward conflict checks
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
}

// InactiveStatuses are excluded from conflict checks permanently
var InactiveStatuses = []AppointmentStatus{
	StatusRejected,
	StatusCancelled,
}
