package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	availabilityRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/availability"
	trainerRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/trainer"
	"github.com/sportclub/SC-AppointmentService/internal/service/availability/models"
	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

// Service manages the weekly working windows of trainers
type Service struct {
	availabilityRepo AvailabilityRepository
	trainerRepo      TrainerRepository
	logger           Logger
}

// NewService creates a new availability service
func NewService(
	availabilityRepo AvailabilityRepository,
	trainerRepo TrainerRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		trainerRepo:      trainerRepo,
		logger:           logger,
	}
}

// Create adds a weekly working window for a trainer.
// Overlapping windows for the same trainer and day are allowed.
func (s *Service) Create(ctx context.Context, req *models.CreateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Create: creating availability for trainer=%d day=%d %s-%s",
		req.TrainerID, req.DayOfWeek, req.StartTime, req.EndTime)

	if err := s.validateWindow(ctx, req.TrainerID, req.DayOfWeek, req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("Create: invalid availability data: %v", err)
		return nil, err
	}

	created, err := s.availabilityRepo.Create(ctx, &domain.TrainerAvailability{
		TrainerID: req.TrainerID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created availability id=%d", created.ID)
	return models.FromDomainAvailability(created), nil
}

// GetByID fetches one availability window
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AvailabilityResponse, error) {
	a, err := s.availabilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("GetByID: availability id=%d not found", id)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("GetByID: repository error for availability id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAvailability(a), nil
}

// GetAll fetches all availability windows ordered by trainer, day and start time
func (s *Service) GetAll(ctx context.Context) (*models.AvailabilityListResponse, error) {
	items, err := s.availabilityRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAvailabilityList(items), nil
}

// Update replaces the fields of an availability window
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Update: updating availability id=%d", id)

	if err := s.validateWindow(ctx, req.TrainerID, req.DayOfWeek, req.StartTime, req.EndTime); err != nil {
		s.logger.Warn("Update: invalid availability data for id=%d: %v", id, err)
		return nil, err
	}

	a := &domain.TrainerAvailability{
		ID:        id,
		TrainerID: req.TrainerID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.availabilityRepo.Update(ctx, a); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Update: availability id=%d not found", id)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("Update: repository error for availability id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes an availability window
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting availability id=%d", id)

	if err := s.availabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Delete: availability id=%d not found", id)
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Delete: repository error for availability id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted availability id=%d", id)
	return nil
}

// validateWindow checks the day index, the time values and that the
// referenced trainer exists. Windows are same-day only: the end time
// must be strictly after the start time.
func (s *Service) validateWindow(ctx context.Context, trainerID int64, dayOfWeek int, start, end types.TimeString) error {
	if trainerID <= 0 {
		return fmt.Errorf("%w: trainerId is required", ErrInvalidInput)
	}
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !end.IsAfter(start) {
		return ErrInvalidTimeRange
	}

	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			return ErrTrainerNotFound
		}
		return fmt.Errorf("%w: validateWindow - repository error: %v", ErrInternal, err)
	}
	return nil
}
