package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	availabilityRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/availability"
	trainerRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/trainer"
	"github.com/sportclub/SC-AppointmentService/internal/service/availability/models"
)

type fakeAvailabilityRepo struct {
	windows map[int64]*domain.TrainerAvailability
	nextID  int64
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, a *domain.TrainerAvailability) (*domain.TrainerAvailability, error) {
	f.nextID++
	created := *a
	created.ID = f.nextID
	f.windows[created.ID] = &created
	return &created, nil
}

func (f *fakeAvailabilityRepo) GetByID(_ context.Context, id int64) (*domain.TrainerAvailability, error) {
	a, ok := f.windows[id]
	if !ok {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return a, nil
}

func (f *fakeAvailabilityRepo) ListByTrainerAndDay(_ context.Context, trainerID int64, dayOfWeek int) ([]*domain.TrainerAvailability, error) {
	var out []*domain.TrainerAvailability
	for _, a := range f.windows {
		if a.TrainerID == trainerID && a.DayOfWeek == dayOfWeek {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ListAll(_ context.Context) ([]*domain.TrainerAvailability, error) {
	var out []*domain.TrainerAvailability
	for _, a := range f.windows {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) Update(_ context.Context, a *domain.TrainerAvailability) error {
	if _, ok := f.windows[a.ID]; !ok {
		return availabilityRepo.ErrAvailabilityNotFound
	}
	f.windows[a.ID] = a
	return nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.windows[id]; !ok {
		return availabilityRepo.ErrAvailabilityNotFound
	}
	delete(f.windows, id)
	return nil
}

type fakeTrainerRepo struct {
	trainers map[int64]*domain.Trainer
}

func (f *fakeTrainerRepo) GetByID(_ context.Context, id int64) (*domain.Trainer, error) {
	tr, ok := f.trainers[id]
	if !ok {
		return nil, trainerRepo.ErrTrainerNotFound
	}
	return tr, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() *Service {
	return NewService(
		&fakeAvailabilityRepo{windows: map[int64]*domain.TrainerAvailability{}},
		&fakeTrainerRepo{trainers: map[int64]*domain.Trainer{
			7: {ID: 7, FullName: "Ayşe Demir"},
		}},
		nopLogger{},
	)
}

func TestCreateValidWindow(t *testing.T) {
	svc := newService()

	resp, err := svc.Create(context.Background(), &models.CreateAvailabilityRequest{
		TrainerID: 7,
		DayOfWeek: 2,
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Çarşamba", resp.DayName)
	assert.NotZero(t, resp.ID)
}

func TestCreateValidation(t *testing.T) {
	svc := newService()

	tests := []struct {
		name    string
		req     models.CreateAvailabilityRequest
		wantErr error
	}{
		{
			name:    "day out of range",
			req:     models.CreateAvailabilityRequest{TrainerID: 7, DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative day",
			req:     models.CreateAvailabilityRequest{TrainerID: 7, DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start",
			req:     models.CreateAvailabilityRequest{TrainerID: 7, DayOfWeek: 2, StartTime: "9:00", EndTime: "17:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end equals start",
			req:     models.CreateAvailabilityRequest{TrainerID: 7, DayOfWeek: 2, StartTime: "09:00", EndTime: "09:00"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "end before start",
			req:     models.CreateAvailabilityRequest{TrainerID: 7, DayOfWeek: 2, StartTime: "17:00", EndTime: "09:00"},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "unknown trainer",
			req:     models.CreateAvailabilityRequest{TrainerID: 99, DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00"},
			wantErr: ErrTrainerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := newService()

	assert.ErrorIs(t, svc.Delete(context.Background(), 999), ErrAvailabilityNotFound)
}
