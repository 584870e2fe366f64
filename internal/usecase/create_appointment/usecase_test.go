package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	serviceRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/service"
	"github.com/sportclub/SC-AppointmentService/pkg/types"
)

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeAvailabilityRepo struct {
	windows []*domain.TrainerAvailability
}

func (f *fakeAvailabilityRepo) ListByTrainerAndDay(_ context.Context, trainerID int64, dayOfWeek int) ([]*domain.TrainerAvailability, error) {
	var out []*domain.TrainerAvailability
	for _, w := range f.windows {
		if w.TrainerID == trainerID && w.DayOfWeek == dayOfWeek {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, ap *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	created := *ap
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeAppointmentRepo) ListActiveOverlappingByTrainer(_ context.Context, trainerID int64, start, end time.Time) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, ap := range f.appointments {
		if ap.TrainerID == trainerID && ap.IsActive() && domain.Overlaps(ap.StartAt, ap.EndAt, start, end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-10-15 is a Wednesday, Monday-origin day index 2
var wednesday = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func newFixture() (*UseCase, *fakeAppointmentRepo) {
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Personal Training", DurationMinutes: 30, Price: 500},
	}}
	windows := &fakeAvailabilityRepo{windows: []*domain.TrainerAvailability{
		{ID: 1, TrainerID: 7, DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00"},
	}}
	appointments := &fakeAppointmentRepo{}

	uc := NewUseCase(services, windows, appointments, fakeTxManager{}, nopLogger{})
	return uc, appointments
}

func request(startTime string) *Request {
	return &Request{
		TrainerID: 7,
		ServiceID: 1,
		UserID:    42,
		Date:      wednesday,
		StartTime: types.TimeString(startTime),
	}
}

func TestExecuteCreatesPendingAppointment(t *testing.T) {
	uc, _ := newFixture()

	resp, err := uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(7), resp.TrainerID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, 500.0, resp.StoredPrice)
	assert.Equal(t, 30, resp.StoredDurationMinutes)
	assert.Equal(t, time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), resp.StartAt)
	assert.Equal(t, time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), resp.EndAt)
}

func TestExecuteServiceNotFound(t *testing.T) {
	uc, _ := newFixture()

	req := request("10:00")
	req.ServiceID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteTrainerNotAvailable(t *testing.T) {
	uc, _ := newFixture()

	// 08:30 starts before the 09:00 window opens
	_, err := uc.Execute(context.Background(), request("08:30"))
	assert.ErrorIs(t, err, ErrTrainerNotAvailable)

	var notAvailable *NotAvailableError
	require.ErrorAs(t, err, &notAvailable)
	assert.Equal(t, "Çarşamba", notAvailable.DayName)
}

func TestExecuteIntervalMustFitInsideWindow(t *testing.T) {
	uc, _ := newFixture()

	// ends at 17:00 exactly, still inside the window
	_, err := uc.Execute(context.Background(), request("16:30"))
	require.NoError(t, err)

	// ends at 17:15, past the window
	_, err = uc.Execute(context.Background(), request("16:45"))
	assert.ErrorIs(t, err, ErrTrainerNotAvailable)
}

func TestExecuteSlotConflict(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)

	// 10:15 overlaps the 10:00-10:30 pending appointment
	_, err = uc.Execute(context.Background(), request("10:15"))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecuteBackToBackAppointments(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)

	// half-open intervals: a 10:30 start does not overlap a 10:30 end
	_, err = uc.Execute(context.Background(), request("10:30"))
	require.NoError(t, err)
}

func TestExecuteInactiveAppointmentsDoNotConflict(t *testing.T) {
	uc, appointments := newFixture()

	resp, err := uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)

	// reject the appointment, freeing its slot
	for _, ap := range appointments.appointments {
		if ap.ID == resp.ID {
			ap.Status = domain.StatusRejected
		}
	}

	_, err = uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)
}

func TestExecuteValidation(t *testing.T) {
	uc, _ := newFixture()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "non-positive trainer id", mutate: func(r *Request) { r.TrainerID = 0 }},
		{name: "non-positive service id", mutate: func(r *Request) { r.ServiceID = -1 }},
		{name: "non-positive user id", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "9:30" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request("10:00")
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteServiceNotFoundWinsOverAvailability(t *testing.T) {
	uc, _ := newFixture()

	// both the service and the availability would fail; the service
	// check runs first
	req := request("08:30")
	req.ServiceID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.False(t, errors.Is(err, ErrTrainerNotAvailable))
}
