package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	serviceRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/service"
)

// UseCase creates appointment requests for authenticated members.
// The availability read, conflict scan and insert run inside a single
// serializable transaction so two concurrent requests cannot both pass
// the conflict check and insert overlapping appointments.
type UseCase struct {
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase creates the use case
func NewUseCase(
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute runs the booking workflow. The checks are ordered and
// short-circuiting: service resolution, interval validity, availability,
// then the conflict scan.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, trainer=%d, service=%d, date=%s, time=%s",
		req.UserID, req.TrainerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 1. Resolve the service
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 2. Compute the absolute interval from the service duration
	start, err := combineDateTime(req.Date, req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to combine date and time: %v", err)
		return nil, err
	}
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	// Only reachable with a non-positive duration, which the service
	// invariant should prevent. Checked anyway.
	if !end.After(start) {
		uc.logger.Warn("CreateAppointment: invalid interval start=%s end=%s", start, end)
		return nil, ErrInvalidInterval
	}

	dayIndex := domain.DayIndex(start)

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Availability: the interval must fit inside a single window
		// of the trainer on that day
		windows, err := uc.availabilityRepo.ListByTrainerAndDay(txCtx, req.TrainerID, dayIndex)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get availability for trainer=%d: %v", req.TrainerID, err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		if !hasCoveringWindow(windows, start, end) {
			uc.logger.Warn("CreateAppointment: trainer=%d not available on day=%d %s-%s",
				req.TrainerID, dayIndex, req.StartTime, domain.DayName(dayIndex))
			return &NotAvailableError{DayName: domain.DayName(dayIndex)}
		}

		// 4. Conflict: no active appointment may overlap [start, end)
		conflicts, err := uc.appointmentRepo.ListActiveOverlappingByTrainer(txCtx, req.TrainerID, start, end)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to scan conflicts for trainer=%d: %v", req.TrainerID, err)
			return fmt.Errorf("%w: failed to scan conflicts: %v", ErrInternal, err)
		}

		if len(conflicts) > 0 {
			uc.logger.Warn("CreateAppointment: slot conflict for trainer=%d, %d overlapping appointment(s)",
				req.TrainerID, len(conflicts))
			return ErrSlotConflict
		}

		// 5. Persist with the price and duration snapshotted now
		appointment := &domain.Appointment{
			TrainerID:             req.TrainerID,
			ServiceID:             req.ServiceID,
			UserID:                req.UserID,
			StartAt:               start,
			EndAt:                 end,
			Status:                domain.StatusPending,
			StoredPrice:           svc.Price,
			StoredDurationMinutes: svc.DurationMinutes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:                    result.ID,
		TrainerID:             result.TrainerID,
		ServiceID:             result.ServiceID,
		UserID:                result.UserID,
		StartAt:               result.StartAt,
		EndAt:                 result.EndAt,
		Status:                string(result.Status),
		StoredPrice:           result.StoredPrice,
		StoredDurationMinutes: result.StoredDurationMinutes,
		CreatedAt:             result.CreatedAt,
		UpdatedAt:             result.UpdatedAt,
	}, nil
}
