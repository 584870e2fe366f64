package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	appointmentRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/appointment"
	"github.com/sportclub/SC-AppointmentService/internal/service/appointments/models"
)

// Service works with booked appointments: reading history and moving
// them through the status lifecycle.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates a new appointments service
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID fetches one appointment.
// A user may only see their own appointment unless they are an admin.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	ap, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if ap.UserID != userID && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(ap), nil
}

// GetUserAppointments fetches the appointment history of a user,
// newest first. Optionally filters by status.
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	items, err := s.appointmentRepo.ListByUser(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filtered := items[:0]
		for _, a := range items {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		items = filtered
	}

	s.logger.Info("GetUserAppointments: fetched %d appointments for user=%d", len(items), req.UserID)
	return models.FromDomainAppointmentList(items), nil
}

// GetAll fetches all appointments, newest first, with an optional status
// filter. Intended for admin listings; access is enforced by the caller.
func (s *Service) GetAll(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetAll: fetching appointments, status=%v", req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetAll: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	items, err := s.appointmentRepo.ListAll(ctx, domainStatus)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d appointments", len(items))
	return models.FromDomainAppointmentList(items), nil
}

// Approve marks a pending appointment as approved.
// The slot is not re-checked for conflicts here: the check ran when the
// appointment was created, and the pending appointment has been blocking
// the slot ever since.
func (s *Service) Approve(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.StatusApproved, "Approve")
}

// Reject marks a pending appointment as rejected, freeing its slot.
func (s *Service) Reject(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.StatusRejected, "Reject")
}

// Cancel cancels an appointment. A user may cancel only their own
// appointment; an admin may cancel any.
func (s *Service) Cancel(ctx context.Context, id int64, userID int64, isAdmin bool) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", id, userID)

	ap, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if ap.UserID != userID && !isAdmin {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", userID, id)
		return ErrAccessDenied
	}

	if !ap.Status.CanTransitionTo(domain.StatusCancelled) {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, ap.Status)
		return ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// transition loads the appointment, validates the status change against
// the lifecycle rules and persists the new status.
func (s *Service) transition(ctx context.Context, id int64, target domain.AppointmentStatus, op string) error {
	s.logger.Info("%s: updating appointment id=%d to status=%s", op, id, target)

	ap, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !ap.Status.CanTransitionTo(target) {
		s.logger.Warn("%s: invalid transition %s -> %s for appointment id=%d", op, ap.Status, target, id)
		return ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: successfully updated appointment id=%d to status=%s", op, id, target)
	return nil
}
