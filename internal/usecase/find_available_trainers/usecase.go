package find_available_trainers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	serviceRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/service"
	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

// UseCase answers "which trainers can be booked for this service at this
// slot": the conjunction of eligible (trainer offers the service),
// available (a weekly window covers the interval) and free (no active
// appointment overlaps it), evaluated per trainer.
type UseCase struct {
	serviceRepo      ServiceRepository
	trainerRepo      TrainerRepository
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	serviceRepo ServiceRepository,
	trainerRepo TrainerRepository,
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		trainerRepo:      trainerRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		logger:           logger,
	}
}

// Execute runs the availability query
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableTrainers: service=%d, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableTrainers: validation failed: %v", err)
		return nil, err
	}

	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("FindAvailableTrainers: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("FindAvailableTrainers: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	start, err := combineDateTime(req.Date, req.StartTime)
	if err != nil {
		uc.logger.Warn("FindAvailableTrainers: failed to combine date and time: %v", err)
		return nil, err
	}
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	if !end.After(start) {
		uc.logger.Warn("FindAvailableTrainers: invalid interval start=%s end=%s", start, end)
		return nil, ErrInvalidInterval
	}

	dayIndex := domain.DayIndex(start)

	// Eligible trainers, in stable name order
	eligible, err := uc.trainerRepo.ListByService(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("FindAvailableTrainers: failed to list trainers for service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to list trainers: %v", ErrInternal, err)
	}

	// The day's windows and the slot's active appointments, one round
	// trip each; the predicates are evaluated per trainer in memory
	windows, err := uc.availabilityRepo.ListByDay(ctx, dayIndex)
	if err != nil {
		uc.logger.Error("FindAvailableTrainers: failed to list availability for day=%d: %v", dayIndex, err)
		return nil, fmt.Errorf("%w: failed to list availability: %v", ErrInternal, err)
	}

	overlapping, err := uc.appointmentRepo.ListActiveOverlapping(ctx, start, end)
	if err != nil {
		uc.logger.Error("FindAvailableTrainers: failed to list overlapping appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list overlapping appointments: %v", ErrInternal, err)
	}

	trainers := selectBookable(
		eligible,
		groupWindowsByTrainer(windows),
		groupConflictsByTrainer(overlapping),
		start,
		end,
	)

	uc.logger.Info("FindAvailableTrainers: %d of %d eligible trainer(s) bookable for service=%d at %s",
		len(trainers), len(eligible), req.ServiceID, start.Format(time.RFC3339))

	return &Response{
		ServiceID: req.ServiceID,
		StartAt:   start,
		EndAt:     end,
		Trainers:  trainers,
	}, nil
}

// validateRequest validates the raw request data
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
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
