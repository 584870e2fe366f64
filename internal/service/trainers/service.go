package trainers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	serviceRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/service"
	trainerRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/trainer"
	"github.com/sportclub/SC-AppointmentService/internal/service/trainers/models"
)

// Service manages trainer profiles and their service assignments
type Service struct {
	trainerRepo TrainerRepository
	serviceRepo ServiceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService creates a new trainers service
func NewService(
	trainerRepo TrainerRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		trainerRepo: trainerRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create adds a new trainer together with their service assignments.
// The profile insert and the assignment inserts run in one transaction.
func (s *Service) Create(ctx context.Context, req *models.CreateTrainerRequest) (*models.TrainerResponse, error) {
	s.logger.Info("Create: creating trainer name=%q with %d services", req.FullName, len(req.ServiceIDs))

	serviceIDs, err := s.validateTrainerFields(ctx, req.FullName, req.Bio, req.ServiceIDs)
	if err != nil {
		s.logger.Warn("Create: invalid trainer data: %v", err)
		return nil, err
	}

	var created *domain.Trainer
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		t, err := s.trainerRepo.Create(ctx, &domain.Trainer{
			FullName: strings.TrimSpace(req.FullName),
			Bio:      req.Bio,
		})
		if err != nil {
			return err
		}
		created = t
		return s.trainerRepo.ReplaceServices(ctx, t.ID, serviceIDs)
	})
	if err != nil {
		s.logger.Error("Create: transaction error: %v", err)
		return nil, fmt.Errorf("%w: Create - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created trainer id=%d", created.ID)
	return models.FromDomainTrainer(created, serviceIDs), nil
}

// GetByID fetches one trainer with their service assignments
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TrainerResponse, error) {
	t, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			s.logger.Warn("GetByID: trainer id=%d not found", id)
			return nil, ErrTrainerNotFound
		}
		s.logger.Error("GetByID: repository error for trainer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	serviceIDs, err := s.trainerRepo.GetServiceIDs(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to load services for trainer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTrainer(t, serviceIDs), nil
}

// GetAll fetches all trainers ordered by name
func (s *Service) GetAll(ctx context.Context) (*models.TrainerListResponse, error) {
	items, err := s.trainerRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	resp := &models.TrainerListResponse{
		Trainers: make([]*models.TrainerResponse, 0, len(items)),
		Total:    len(items),
	}
	for _, t := range items {
		serviceIDs, err := s.trainerRepo.GetServiceIDs(ctx, t.ID)
		if err != nil {
			s.logger.Error("GetAll: failed to load services for trainer id=%d: %v", t.ID, err)
			return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
		}
		resp.Trainers = append(resp.Trainers, models.FromDomainTrainer(t, serviceIDs))
	}
	return resp, nil
}

// Update replaces the profile fields and service assignments of a trainer
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTrainerRequest) (*models.TrainerResponse, error) {
	s.logger.Info("Update: updating trainer id=%d", id)

	serviceIDs, err := s.validateTrainerFields(ctx, req.FullName, req.Bio, req.ServiceIDs)
	if err != nil {
		s.logger.Warn("Update: invalid trainer data for id=%d: %v", id, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.trainerRepo.Update(ctx, &domain.Trainer{
			ID:       id,
			FullName: strings.TrimSpace(req.FullName),
			Bio:      req.Bio,
		}); err != nil {
			return err
		}
		return s.trainerRepo.ReplaceServices(ctx, id, serviceIDs)
	})
	if err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			s.logger.Warn("Update: trainer id=%d not found", id)
			return nil, ErrTrainerNotFound
		}
		s.logger.Error("Update: transaction error for trainer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - transaction error: %v", ErrInternal, err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a trainer profile
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting trainer id=%d", id)

	if err := s.trainerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, trainerRepo.ErrTrainerNotFound) {
			s.logger.Warn("Delete: trainer id=%d not found", id)
			return ErrTrainerNotFound
		}
		s.logger.Error("Delete: repository error for trainer id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted trainer id=%d", id)
	return nil
}

// validateTrainerFields checks the profile bounds and resolves the
// assigned services, returning the deduplicated id list.
func (s *Service) validateTrainerFields(ctx context.Context, fullName string, bio *string, serviceIDs []int64) ([]int64, error) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return nil, fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxTrainerFullNameLength {
		return nil, fmt.Errorf("%w: fullName must be at most %d characters", ErrInvalidInput, domain.MaxTrainerFullNameLength)
	}
	if bio != nil && len([]rune(*bio)) > domain.MaxTrainerBioLength {
		return nil, fmt.Errorf("%w: bio must be at most %d characters", ErrInvalidInput, domain.MaxTrainerBioLength)
	}

	seen := make(map[int64]struct{}, len(serviceIDs))
	unique := make([]int64, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: invalid service id %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if _, err := s.serviceRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, fmt.Errorf("%w: validateTrainerFields - repository error: %v", ErrInternal, err)
		}
		unique = append(unique, id)
	}
	return unique, nil
}
