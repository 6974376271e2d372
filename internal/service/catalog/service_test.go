package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
)

type fakeServiceRepo struct {
	services map[int64]*domain.ServiceDefinition
	err      error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, professionalID, serviceID int64) (*domain.ServiceDefinition, error) {
	if f.err != nil {
		return nil, f.err
	}
	svc, ok := f.services[serviceID]
	if !ok || svc.ProfessionalID != professionalID {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeServiceRepo) ListByProfessional(_ context.Context, professionalID int64) ([]*domain.ServiceDefinition, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.ServiceDefinition
	for _, svc := range f.services {
		if svc.ProfessionalID == professionalID {
			out = append(out, svc)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func haircut() *domain.ServiceDefinition {
	return &domain.ServiceDefinition{
		ID:              10,
		ProfessionalID:  1,
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           50,
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeServiceRepo{services: map[int64]*domain.ServiceDefinition{10: haircut()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Haircut", resp.Name)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, 50.0, resp.Price)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeServiceRepo{services: map[int64]*domain.ServiceDefinition{10: haircut()}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99, 10)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetByID_InvalidInput(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByID(context.Background(), 1, -5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_RepositoryError(t *testing.T) {
	svc := NewService(&fakeServiceRepo{err: assert.AnError}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListByProfessional(t *testing.T) {
	other := haircut()
	other.ID = 11
	other.ProfessionalID = 2

	repo := &fakeServiceRepo{services: map[int64]*domain.ServiceDefinition{
		10: haircut(),
		11: other,
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListByProfessional(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Services, 1)
	assert.Equal(t, int64(10), resp.Services[0].ID)
}

func TestListByProfessional_Empty(t *testing.T) {
	svc := NewService(&fakeServiceRepo{services: map[int64]*domain.ServiceDefinition{}}, nopLogger{})

	resp, err := svc.ListByProfessional(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, resp.Services)
}
