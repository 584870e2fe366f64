package trainers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	serviceRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/service"
	trainerRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/trainer"
	"github.com/sportclub/SC-AppointmentService/internal/service/trainers/models"
	"github.com/sportclub/SC-AppointmentService/pkg/ptr"
)

type fakeTrainerRepo struct {
	trainers    map[int64]*domain.Trainer
	assignments map[int64][]int64
	nextID      int64
}

func (f *fakeTrainerRepo) Create(_ context.Context, t *domain.Trainer) (*domain.Trainer, error) {
	f.nextID++
	created := *t
	created.ID = f.nextID
	f.trainers[created.ID] = &created
	return &created, nil
}

func (f *fakeTrainerRepo) GetByID(_ context.Context, id int64) (*domain.Trainer, error) {
	tr, ok := f.trainers[id]
	if !ok {
		return nil, trainerRepo.ErrTrainerNotFound
	}
	return tr, nil
}

func (f *fakeTrainerRepo) ListAll(_ context.Context) ([]*domain.Trainer, error) {
	var out []*domain.Trainer
	for _, tr := range f.trainers {
		out = append(out, tr)
	}
	return out, nil
}

func (f *fakeTrainerRepo) GetServiceIDs(_ context.Context, trainerID int64) ([]int64, error) {
	return f.assignments[trainerID], nil
}

func (f *fakeTrainerRepo) ReplaceServices(_ context.Context, trainerID int64, serviceIDs []int64) error {
	f.assignments[trainerID] = serviceIDs
	return nil
}

func (f *fakeTrainerRepo) Update(_ context.Context, t *domain.Trainer) error {
	if _, ok := f.trainers[t.ID]; !ok {
		return trainerRepo.ErrTrainerNotFound
	}
	f.trainers[t.ID] = t
	return nil
}

func (f *fakeTrainerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.trainers[id]; !ok {
		return trainerRepo.ErrTrainerNotFound
	}
	delete(f.trainers, id)
	return nil
}

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

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeTrainerRepo) {
	repo := &fakeTrainerRepo{
		trainers:    map[int64]*domain.Trainer{},
		assignments: map[int64][]int64{},
	}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Personal Training", DurationMinutes: 60, Price: 500},
		2: {ID: 2, Name: "Yoga", DurationMinutes: 45, Price: 300},
	}}
	return NewService(repo, services, fakeTxManager{}, nopLogger{}), repo
}

func TestCreateTrainerWithServices(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Create(context.Background(), &models.CreateTrainerRequest{
		FullName:   "Ayşe Demir",
		Bio:        ptr.Ptr("Strength and conditioning coach."),
		ServiceIDs: []int64{1, 2, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ayşe Demir", resp.FullName)
	// duplicate assignment collapsed
	assert.Equal(t, []int64{1, 2}, resp.ServiceIDs)
	assert.Equal(t, []int64{1, 2}, repo.assignments[resp.ID])
}

func TestCreateUnknownServiceRejected(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), &models.CreateTrainerRequest{
		FullName:   "Ayşe Demir",
		ServiceIDs: []int64{999},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name string
		req  models.CreateTrainerRequest
	}{
		{name: "empty name", req: models.CreateTrainerRequest{FullName: "  "}},
		{name: "name too long", req: models.CreateTrainerRequest{FullName: strings.Repeat("a", 81)}},
		{name: "bio too long", req: models.CreateTrainerRequest{
			FullName: "Ayşe Demir",
			Bio:      ptr.Ptr(strings.Repeat("b", 601)),
		}},
		{name: "non-positive service id", req: models.CreateTrainerRequest{
			FullName:   "Ayşe Demir",
			ServiceIDs: []int64{0},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateReplacesServices(t *testing.T) {
	svc, repo := newService()

	created, err := svc.Create(context.Background(), &models.CreateTrainerRequest{
		FullName:   "Ayşe Demir",
		ServiceIDs: []int64{1},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &models.UpdateTrainerRequest{
		FullName:   "Ayşe Demir",
		ServiceIDs: []int64{2},
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, updated.ServiceIDs)
	assert.Equal(t, []int64{2}, repo.assignments[created.ID])
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), 999, &models.UpdateTrainerRequest{FullName: "Ayşe Demir"})
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	svc, _ := newService()

	assert.ErrorIs(t, svc.Delete(context.Background(), 999), ErrTrainerNotFound)
}
