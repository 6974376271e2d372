package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

type fakeScheduleRepo struct {
	snapshot  *fakeSnapshot
	getErr    error
	addErr    error
	removeErr error
}

type fakeSnapshot struct {
	version    int64
	week       domain.WeekSchedule
	exceptions []domain.ScheduleException
}

func (f *fakeScheduleRepo) GetSnapshot(_ context.Context, professionalID int64) (*domain.ScheduleSnapshot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &domain.ScheduleSnapshot{
		ProfessionalID: professionalID,
		Version:        f.snapshot.version,
		Week:           f.snapshot.week,
		Exceptions:     f.snapshot.exceptions,
	}, nil
}

func (f *fakeScheduleRepo) ReplaceWeek(_ context.Context, _ int64, week domain.WeekSchedule) (int64, error) {
	f.snapshot.version++
	f.snapshot.week = week
	return f.snapshot.version, nil
}

// AddException сначала двигает версию, как настоящий репозиторий,
// и только потом падает: частичное состояние должна убрать транзакция
func (f *fakeScheduleRepo) AddException(_ context.Context, _ int64, exc domain.ScheduleException) (int64, error) {
	f.snapshot.version++
	if f.addErr != nil {
		return 0, f.addErr
	}
	f.snapshot.exceptions = append(f.snapshot.exceptions, exc)
	return f.snapshot.version, nil
}

// RemoveException сначала удаляет блокировку и только потом падает,
// зеркально AddException
func (f *fakeScheduleRepo) RemoveException(_ context.Context, _ int64, exceptionID string) (int64, error) {
	for i, exc := range f.snapshot.exceptions {
		if exc.ID == exceptionID {
			f.snapshot.exceptions = append(f.snapshot.exceptions[:i], f.snapshot.exceptions[i+1:]...)
			if f.removeErr != nil {
				return 0, f.removeErr
			}
			f.snapshot.version++
			return f.snapshot.version, nil
		}
	}
	return 0, scheduleRepo.ErrExceptionNotFound
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// rollbackTxManager откатывает состояние fake-репозитория при ошибке fn,
// имитируя rollback настоящей транзакции
type rollbackTxManager struct {
	repo  *fakeScheduleRepo
	calls int
}

func (m *rollbackTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	savedVersion := m.repo.snapshot.version
	savedWeek := m.repo.snapshot.week
	savedExceptions := append([]domain.ScheduleException(nil), m.repo.snapshot.exceptions...)

	if err := fn(ctx); err != nil {
		m.repo.snapshot.version = savedVersion
		m.repo.snapshot.week = savedWeek
		m.repo.snapshot.exceptions = savedExceptions
		return err
	}
	return nil
}

type recordingCache struct {
	invalidated int
}

func (c *recordingCache) InvalidateProfessional(_ context.Context, _ int64) {
	c.invalidated++
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() (*Service, *fakeScheduleRepo, *recordingCache) {
	repo := &fakeScheduleRepo{snapshot: &fakeSnapshot{
		version: 3,
		week: domain.WeekSchedule{
			time.Monday: {Enabled: true, OpenMinute: 540, CloseMinute: 1080},
		},
	}}
	cache := &recordingCache{}
	svc := NewService(repo, passthroughTxManager{}, cache, nopLogger{})
	return svc, repo, cache
}

func TestGetSchedule_ReturnsDaysAndBlocks(t *testing.T) {
	svc, repo, _ := newFixture()
	repo.snapshot.exceptions = []domain.ScheduleException{
		{
			ID: uuid.NewString(), Scope: domain.ScopeAnnual,
			Month: time.December, Day: 25, FullDay: true, Label: "Christmas",
		},
		{
			ID: uuid.NewString(), Scope: domain.ScopeOneOff,
			Year: 2025, Month: time.July, Day: 14,
			StartMinute: ptr.Ptr(720), EndMinute: ptr.Ptr(780), Label: "Lunch meeting",
		},
	}

	resp, err := svc.GetSchedule(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Version)
	require.Contains(t, resp.Days, "monday")
	assert.Equal(t, "09:00", resp.Days["monday"].OpenTime)
	assert.Equal(t, "18:00", resp.Days["monday"].CloseTime)

	require.Len(t, resp.BlockedDates, 2)
	assert.Equal(t, "--12-25", resp.BlockedDates[0].Date)
	assert.True(t, resp.BlockedDates[0].RepeatYearly)
	assert.True(t, resp.BlockedDates[0].FullDay)
	assert.Equal(t, "2025-07-14", resp.BlockedDates[1].Date)
	require.NotNil(t, resp.BlockedDates[1].StartTime)
	assert.Equal(t, "12:00", *resp.BlockedDates[1].StartTime)
}

func TestGetSchedule_NotFound(t *testing.T) {
	svc, repo, _ := newFixture()
	repo.getErr = scheduleRepo.ErrScheduleNotFound

	_, err := svc.GetSchedule(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestReplaceWeekHours_BumpsVersionAndInvalidates(t *testing.T) {
	svc, repo, cache := newFixture()

	resp, err := svc.ReplaceWeekHours(context.Background(), &models.ReplaceWeekHoursRequest{
		ProfessionalID: 1,
		Days: map[string]models.DayHours{
			"tuesday": {Enabled: true, OpenTime: "10:00", CloseTime: "16:00"},
			"sunday":  {Enabled: false},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.Version)
	assert.Equal(t, 1, cache.invalidated)

	window := repo.snapshot.week[time.Tuesday]
	assert.True(t, window.Enabled)
	assert.Equal(t, 600, window.OpenMinute)
	assert.Equal(t, 960, window.CloseMinute)

	_, hasMonday := repo.snapshot.week[time.Monday]
	assert.False(t, hasMonday, "days absent from the request become days off")
}

func TestReplaceWeekHours_DefaultsForEnabledDay(t *testing.T) {
	svc, repo, _ := newFixture()

	_, err := svc.ReplaceWeekHours(context.Background(), &models.ReplaceWeekHoursRequest{
		ProfessionalID: 1,
		Days: map[string]models.DayHours{
			"friday": {Enabled: true},
		},
	})
	require.NoError(t, err)

	window := repo.snapshot.week[time.Friday]
	assert.Equal(t, domain.DefaultOpenMinute, window.OpenMinute)
	assert.Equal(t, domain.DefaultCloseMinute, window.CloseMinute)
}

func TestReplaceWeekHours_InvalidInput(t *testing.T) {
	svc, _, cache := newFixture()

	tests := []struct {
		name string
		req  *models.ReplaceWeekHoursRequest
	}{
		{"unknown weekday", &models.ReplaceWeekHoursRequest{
			ProfessionalID: 1,
			Days:           map[string]models.DayHours{"someday": {Enabled: true}},
		}},
		{"open after close", &models.ReplaceWeekHoursRequest{
			ProfessionalID: 1,
			Days: map[string]models.DayHours{
				"monday": {Enabled: true, OpenTime: "18:00", CloseTime: "09:00"},
			},
		}},
		{"malformed time", &models.ReplaceWeekHoursRequest{
			ProfessionalID: 1,
			Days: map[string]models.DayHours{
				"monday": {Enabled: true, OpenTime: "9am", CloseTime: "18:00"},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ReplaceWeekHours(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Zero(t, cache.invalidated)
}

func TestAddBlockedDate_FullDay(t *testing.T) {
	svc, repo, cache := newFixture()

	resp, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
		ProfessionalID: 1,
		Date:           "2025-12-25",
		RepeatYearly:   true,
		Reason:         "Christmas",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.Version)
	assert.NotEmpty(t, resp.BlockedDateID)
	assert.Equal(t, 1, cache.invalidated)

	require.Len(t, repo.snapshot.exceptions, 1)
	exc := repo.snapshot.exceptions[0]
	assert.Equal(t, domain.ScopeAnnual, exc.Scope)
	assert.True(t, exc.FullDay)
	assert.Equal(t, time.December, exc.Month)
	assert.Equal(t, 25, exc.Day)
}

func TestAddBlockedDate_Ranged(t *testing.T) {
	svc, repo, _ := newFixture()

	_, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
		ProfessionalID: 1,
		Date:           "2025-07-14",
		StartTime:      ptr.Ptr(types.TimeString("12:00")),
		EndTime:        ptr.Ptr(types.TimeString("13:00")),
	})
	require.NoError(t, err)

	exc := repo.snapshot.exceptions[0]
	assert.Equal(t, domain.ScopeOneOff, exc.Scope)
	assert.Equal(t, 2025, exc.Year)
	assert.False(t, exc.FullDay)
	require.NotNil(t, exc.StartMinute)
	assert.Equal(t, 720, *exc.StartMinute)
}

func TestAddBlockedDate_InvalidInput(t *testing.T) {
	svc, _, _ := newFixture()

	tests := []struct {
		name string
		req  *models.AddBlockedDateRequest
	}{
		{"bad date", &models.AddBlockedDateRequest{ProfessionalID: 1, Date: "25/12/2025"}},
		{"only start time", &models.AddBlockedDateRequest{
			ProfessionalID: 1, Date: "2025-07-14",
			StartTime: ptr.Ptr(types.TimeString("12:00")),
		}},
		{"end before start", &models.AddBlockedDateRequest{
			ProfessionalID: 1, Date: "2025-07-14",
			StartTime: ptr.Ptr(types.TimeString("13:00")),
			EndTime:   ptr.Ptr(types.TimeString("12:00")),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddBlockedDate(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRemoveBlockedDate_Found(t *testing.T) {
	svc, repo, cache := newFixture()
	id := uuid.NewString()
	repo.snapshot.exceptions = []domain.ScheduleException{
		{ID: id, Scope: domain.ScopeOneOff, Year: 2025, Month: time.July, Day: 14, FullDay: true},
	}

	resp, err := svc.RemoveBlockedDate(context.Background(), 1, id)
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.Version)
	assert.Empty(t, repo.snapshot.exceptions)
	assert.Equal(t, 1, cache.invalidated)
}

func TestRemoveBlockedDate_NotFound(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.RemoveBlockedDate(context.Background(), 1, uuid.NewString())
	assert.ErrorIs(t, err, ErrBlockedDateNotFound)
}

func TestRemoveBlockedDate_MalformedID(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.RemoveBlockedDate(context.Background(), 1, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddBlockedDate_RepositoryFailureLeavesNoPartialState(t *testing.T) {
	_, repo, cache := newFixture()
	repo.addErr = assert.AnError
	tx := &rollbackTxManager{repo: repo}
	svc := NewService(repo, tx, cache, nopLogger{})

	_, err := svc.AddBlockedDate(context.Background(), &models.AddBlockedDateRequest{
		ProfessionalID: 1,
		Date:           "2025-07-14",
	})
	require.ErrorIs(t, err, ErrInternal)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, int64(3), repo.snapshot.version)
	assert.Empty(t, repo.snapshot.exceptions)
	assert.Equal(t, 0, cache.invalidated)
}

func TestRemoveBlockedDate_RepositoryFailureLeavesNoPartialState(t *testing.T) {
	_, repo, cache := newFixture()
	id := uuid.NewString()
	repo.snapshot.exceptions = []domain.ScheduleException{
		{ID: id, Scope: domain.ScopeOneOff, Year: 2025, Month: time.July, Day: 14, FullDay: true},
	}
	repo.removeErr = assert.AnError
	tx := &rollbackTxManager{repo: repo}
	svc := NewService(repo, tx, cache, nopLogger{})

	_, err := svc.RemoveBlockedDate(context.Background(), 1, id)
	require.ErrorIs(t, err, ErrInternal)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, int64(3), repo.snapshot.version)
	require.Len(t, repo.snapshot.exceptions, 1)
	assert.Equal(t, id, repo.snapshot.exceptions[0].ID)
	assert.Equal(t, 0, cache.invalidated)
}
