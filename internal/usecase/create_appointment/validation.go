package create_appointment

import (
	"fmt"
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

// validateRequest validates the raw request data
func validateRequest(req *Request) error {
	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// combineDateTime builds the absolute start timestamp from the requested
// date and time of day
func combineDateTime(date time.Time, startTime types.TimeString) (time.Time, error) {
	minutes, err := startTime.Minutes()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Add(time.Duration(minutes) * time.Minute), nil
}

// windowCovers reports whether a single availability window covers the
// requested interval. The comparison is on the time of day of the start
// date only; the interval must fit inside one window, back-to-back
// windows do not merge.
func windowCovers(w *domain.TrainerAvailability, start, end time.Time) bool {
	startTod := types.NewTimeString(start)
	endTod := types.NewTimeString(end)

	return !w.StartTime.IsAfter(startTod) && !w.EndTime.IsBefore(endTod)
}

// hasCoveringWindow reports whether any of the windows covers the interval
func hasCoveringWindow(windows []*domain.TrainerAvailability, start, end time.Time) bool {
	for _, w := range windows {
		if windowCovers(w, start, end) {
			return true
		}
	}
	return false
}
