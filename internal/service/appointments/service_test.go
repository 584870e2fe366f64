package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	appointmentRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/appointment"
	"github.com/sportclub/SC-AppointmentService/internal/service/appointments/models"
	"github.com/sportclub/SC-AppointmentService/pkg/ptr"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *ap
	return &copied, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAll(_ context.Context, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, ap := range f.appointments {
		if status == nil || ap.Status == *status {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	ap, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	ap.Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(status domain.AppointmentStatus) (*Service, *fakeRepo) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: {
			ID:        1,
			TrainerID: 7,
			ServiceID: 1,
			UserID:    42,
			StartAt:   time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
			EndAt:     time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC),
			Status:    status,
		},
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestApprovePending(t *testing.T) {
	svc, repo := newFixture(domain.StatusPending)

	require.NoError(t, svc.Approve(context.Background(), 1))
	assert.Equal(t, domain.StatusApproved, repo.appointments[1].Status)
}

func TestApproveNonPendingFails(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusApproved, domain.StatusRejected, domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, repo := newFixture(status)

			err := svc.Approve(context.Background(), 1)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, status, repo.appointments[1].Status)
		})
	}
}

func TestRejectPending(t *testing.T) {
	svc, repo := newFixture(domain.StatusPending)

	require.NoError(t, svc.Reject(context.Background(), 1))
	assert.Equal(t, domain.StatusRejected, repo.appointments[1].Status)
}

func TestRejectApprovedFails(t *testing.T) {
	svc, _ := newFixture(domain.StatusApproved)

	err := svc.Reject(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelByOwner(t *testing.T) {
	svc, repo := newFixture(domain.StatusApproved)

	require.NoError(t, svc.Cancel(context.Background(), 1, 42, false))
	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
}

func TestCancelByOtherUserDenied(t *testing.T) {
	svc, repo := newFixture(domain.StatusPending)

	err := svc.Cancel(context.Background(), 1, 99, false)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.appointments[1].Status)
}

func TestCancelByAdmin(t *testing.T) {
	svc, repo := newFixture(domain.StatusPending)

	require.NoError(t, svc.Cancel(context.Background(), 1, 99, true))
	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
}

func TestCancelTerminalFails(t *testing.T) {
	svc, _ := newFixture(domain.StatusCancelled)

	err := svc.Cancel(context.Background(), 1, 42, false)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionNotFound(t *testing.T) {
	svc, _ := newFixture(domain.StatusPending)

	assert.ErrorIs(t, svc.Approve(context.Background(), 999), ErrAppointmentNotFound)
	assert.ErrorIs(t, svc.Reject(context.Background(), 999), ErrAppointmentNotFound)
	assert.ErrorIs(t, svc.Cancel(context.Background(), 999, 42, false), ErrAppointmentNotFound)
}

func TestGetByIDAccessControl(t *testing.T) {
	svc, _ := newFixture(domain.StatusPending)

	// owner
	resp, err := svc.GetByID(context.Background(), 1, 42, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// other user
	_, err = svc.GetByID(context.Background(), 1, 99, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// admin
	resp, err = svc.GetByID(context.Background(), 1, 99, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestGetUserAppointmentsStatusFilter(t *testing.T) {
	svc, repo := newFixture(domain.StatusPending)
	repo.appointments[2] = &domain.Appointment{ID: 2, UserID: 42, Status: domain.StatusRejected}

	resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 42,
		Status: ptr.Ptr(string(domain.StatusRejected)),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(2), resp.Appointments[0].ID)

	_, err = svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 42,
		Status: ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
