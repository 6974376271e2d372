package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

type fakeScheduleRepo struct {
	snapshot *domain.ScheduleSnapshot
	err      error
}

func (f *fakeScheduleRepo) GetSnapshot(_ context.Context, _ int64) (*domain.ScheduleSnapshot, error) {
	return f.snapshot, f.err
}

type fakeServiceRepo struct {
	service *domain.ServiceDefinition
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _, _ int64) (*domain.ServiceDefinition, error) {
	return f.service, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    domain.DayAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByFilter(_ context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = filter
	return f.appointments, f.err
}

type fakeSlotsCache struct {
	stored   *Response
	setCalls int
}

func (f *fakeSlotsCache) Get(_ context.Context, _, _ int64, _ time.Time, _ int, dest interface{}) bool {
	if f.stored == nil {
		return false
	}
	*(dest.(*Response)) = *f.stored
	return true
}

func (f *fakeSlotsCache) Set(_ context.Context, _, _ int64, _ time.Time, _ int, value interface{}) {
	f.setCalls++
	resp := *(value.(*Response))
	f.stored = &resp
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(
	schedules *fakeScheduleRepo,
	services *fakeServiceRepo,
	appointments *fakeAppointmentRepo,
	cache *fakeSlotsCache,
) *UseCase {
	return NewUseCase(schedules, services, appointments, cache, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		ProfessionalID: 1,
		ServiceID:      10,
		Date:           monday,
	}
}

func haircut() *domain.ServiceDefinition {
	return &domain.ServiceDefinition{
		ID:              10,
		ProfessionalID:  1,
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           50,
	}
}

func TestExecute_ReturnsSlotsAroundAppointment(t *testing.T) {
	schedules := &fakeScheduleRepo{snapshot: mondaySnapshot(540, 720)}
	services := &fakeServiceRepo{service: haircut()}
	appointments := &fakeAppointmentRepo{appointments: []*domain.Appointment{activeAppointment(600, 30)}}
	cache := &fakeSlotsCache{}

	uc := newTestUseCase(schedules, services, appointments, cache)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Slots, 5)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "09:30", resp.Slots[0].EndTime.String())
	assert.Equal(t, "10:30", resp.Slots[2].StartTime.String())
	assert.Equal(t, int64(1), resp.ScheduleVersion)
	assert.Equal(t, 1, cache.setCalls)

	require.NotNil(t, appointments.gotFilter.StartDate)
	require.NotNil(t, appointments.gotFilter.EndDate)
	assert.Equal(t, monday, *appointments.gotFilter.StartDate)
	assert.Equal(t, monday, *appointments.gotFilter.EndDate)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{}, &fakeServiceRepo{}, &fakeAppointmentRepo{}, &fakeSlotsCache{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero professional", &Request{ProfessionalID: 0, ServiceID: 10, Date: monday}},
		{"zero service", &Request{ProfessionalID: 1, ServiceID: 0, Date: monday}},
		{"zero date", &Request{ProfessionalID: 1, ServiceID: 10}},
		{"negative step", &Request{ProfessionalID: 1, ServiceID: 10, Date: monday, Step: ptr.Ptr(-5)}},
		{"oversized step", &Request{ProfessionalID: 1, ServiceID: 10, Date: monday, Step: ptr.Ptr(domain.MaxSlotStepMinutes + 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ServiceNotFound(t *testing.T) {
	services := &fakeServiceRepo{err: serviceRepo.ErrServiceNotFound}
	uc := newTestUseCase(&fakeScheduleRepo{}, services, &fakeAppointmentRepo{}, &fakeSlotsCache{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NoScheduleConfigured(t *testing.T) {
	schedules := &fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound}
	uc := newTestUseCase(schedules, &fakeServiceRepo{service: haircut()}, &fakeAppointmentRepo{}, &fakeSlotsCache{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, int64(0), resp.ScheduleVersion)
}

func TestExecute_CacheHitSkipsRepositories(t *testing.T) {
	cached := &Response{ProfessionalID: 1, ServiceID: 10, Date: monday, ScheduleVersion: 7, Slots: []Slot{}}
	schedules := &fakeScheduleRepo{err: assert.AnError}
	appointments := &fakeAppointmentRepo{err: assert.AnError}

	uc := newTestUseCase(schedules, &fakeServiceRepo{service: haircut()}, appointments, &fakeSlotsCache{stored: cached})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ScheduleVersion)
}

func TestExecute_CustomStepOverridesDefault(t *testing.T) {
	schedules := &fakeScheduleRepo{snapshot: mondaySnapshot(540, 600)}
	uc := newTestUseCase(schedules, &fakeServiceRepo{service: haircut()}, &fakeAppointmentRepo{}, &fakeSlotsCache{})

	req := validRequest()
	req.Step = ptr.Ptr(15)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "09:15", resp.Slots[1].StartTime.String())
}

func TestExecute_RepositoryFailureWrapsInternal(t *testing.T) {
	schedules := &fakeScheduleRepo{snapshot: mondaySnapshot(540, 720)}
	appointments := &fakeAppointmentRepo{err: assert.AnError}

	uc := newTestUseCase(schedules, &fakeServiceRepo{service: haircut()}, appointments, &fakeSlotsCache{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
