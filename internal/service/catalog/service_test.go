package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportclub/SC-AppointmentService/internal/domain"
	serviceRepo "github.com/sportclub/SC-AppointmentService/internal/infra/storage/service"
	"github.com/sportclub/SC-AppointmentService/internal/service/catalog/models"
)

type fakeRepo struct {
	services map[int64]*domain.Service
	nextID   int64
}

func (f *fakeRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	f.nextID++
	created := *svc
	created.ID = f.nextID
	f.services[created.ID] = &created
	return &created, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, svc := range f.services {
		out = append(out, svc)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, svc *domain.Service) error {
	if _, ok := f.services[svc.ID]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() *Service {
	return NewService(&fakeRepo{services: map[int64]*domain.Service{}}, nopLogger{})
}

func TestCreateValidService(t *testing.T) {
	svc := newService()

	resp, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:            "Personal Training",
		DurationMinutes: 60,
		Price:           500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Personal Training", resp.Name)
	assert.NotZero(t, resp.ID)
}

func TestCreateValidationBounds(t *testing.T) {
	svc := newService()

	tests := []struct {
		name string
		req  models.CreateServiceRequest
	}{
		{name: "empty name", req: models.CreateServiceRequest{Name: "  ", DurationMinutes: 60, Price: 100}},
		{name: "duration too short", req: models.CreateServiceRequest{Name: "Yoga", DurationMinutes: 9, Price: 100}},
		{name: "duration too long", req: models.CreateServiceRequest{Name: "Yoga", DurationMinutes: 301, Price: 100}},
		{name: "negative price", req: models.CreateServiceRequest{Name: "Yoga", DurationMinutes: 60, Price: -1}},
		{name: "price too high", req: models.CreateServiceRequest{Name: "Yoga", DurationMinutes: 60, Price: 100001}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateAcceptsBoundaryValues(t *testing.T) {
	svc := newService()

	for _, req := range []models.CreateServiceRequest{
		{Name: "Short", DurationMinutes: 10, Price: 0},
		{Name: "Long", DurationMinutes: 300, Price: 100000},
	} {
		_, err := svc.Create(context.Background(), &req)
		assert.NoError(t, err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.Update(context.Background(), 999, &models.UpdateServiceRequest{
		Name:            "Yoga",
		DurationMinutes: 60,
		Price:           100,
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	svc := newService()

	assert.ErrorIs(t, svc.Delete(context.Background(), 999), ErrServiceNotFound)
}
