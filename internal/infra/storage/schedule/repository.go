package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Repository репозиторий расписаний мастеров
//
// Схема данных:
//   - schedules: по строке на мастера, хранит версию снапшота
//   - schedule_windows: окно работы на каждый день недели
//   - schedule_exceptions: блокировки (разовые и ежегодные)
//
// Любая мутация расписания инкрементирует версию в schedules, поэтому
// снапшот, прочитанный через GetSnapshot, всегда можно сверить с актуальным
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSnapshot читает полный снапшот расписания мастера:
// версию, недельную таблицу окон и все блокировки
func (r *Repository) GetSnapshot(ctx context.Context, professionalID int64) (*domain.ScheduleSnapshot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("version").
		From("schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSnapshot - build version query: %v", ErrBuildQuery, err)
	}

	var version int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&version)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSnapshot - scan version: %v", ErrScanRow, err)
	}

	week, err := r.getWeek(ctx, executor, professionalID)
	if err != nil {
		return nil, err
	}

	exceptions, err := r.getExceptions(ctx, executor, professionalID)
	if err != nil {
		return nil, err
	}

	return &domain.ScheduleSnapshot{
		ProfessionalID: professionalID,
		Version:        version,
		Week:           week,
		Exceptions:     exceptions,
	}, nil
}

// ReplaceWeek полностью заменяет недельную таблицу окон мастера
// и инкрементирует версию расписания. Должен вызываться внутри транзакции
func (r *Repository) ReplaceWeek(ctx context.Context, professionalID int64, week domain.WeekSchedule) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	version, err := r.bumpVersion(ctx, executor, professionalID)
	if err != nil {
		return 0, err
	}

	query, args, err := psqlbuilder.Delete("schedule_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("%w: ReplaceWeek - delete windows: %v", ErrExecQuery, err)
	}

	insert := psqlbuilder.Insert("schedule_windows").
		Columns("professional_id", "weekday", "enabled", "open_time", "close_time")

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		window, ok := week[weekday]
		if !ok {
			continue
		}
		openTime, err := types.NewTimeStringFromMinutes(window.OpenMinute)
		if err != nil {
			return 0, fmt.Errorf("%w: ReplaceWeek - open time for %s: %v", ErrBuildQuery, weekday, err)
		}
		closeTime, err := types.NewTimeStringFromMinutes(window.CloseMinute)
		if err != nil {
			return 0, fmt.Errorf("%w: ReplaceWeek - close time for %s: %v", ErrBuildQuery, weekday, err)
		}
		insert = insert.Values(professionalID, int(weekday), window.Enabled, openTime, closeTime)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("%w: ReplaceWeek - insert windows: %v", ErrExecQuery, err)
	}

	return version, nil
}

// AddException добавляет блокировку и инкрементирует версию расписания
// Должен вызываться внутри транзакции
func (r *Repository) AddException(ctx context.Context, professionalID int64, exc domain.ScheduleException) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	version, err := r.bumpVersion(ctx, executor, professionalID)
	if err != nil {
		return 0, err
	}

	var year interface{}
	if exc.Scope == domain.ScopeOneOff {
		year = exc.Year
	}

	var startTime, endTime interface{}
	if !exc.FullDay {
		start, err := types.NewTimeStringFromMinutes(*exc.StartMinute)
		if err != nil {
			return 0, fmt.Errorf("%w: AddException - start time: %v", ErrBuildQuery, err)
		}
		end, err := types.NewTimeStringFromMinutes(*exc.EndMinute)
		if err != nil {
			return 0, fmt.Errorf("%w: AddException - end time: %v", ErrBuildQuery, err)
		}
		startTime, endTime = start, end
	}

	query, args, err := psqlbuilder.Insert("schedule_exceptions").
		Columns("id", "professional_id", "scope", "year", "month", "day", "full_day", "start_time", "end_time", "label").
		Values(exc.ID, professionalID, exc.Scope, year, int(exc.Month), exc.Day, exc.FullDay, startTime, endTime, exc.Label).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: AddException - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("%w: AddException - execute insert: %v", ErrExecQuery, err)
	}

	return version, nil
}

// RemoveException удаляет блокировку и инкрементирует версию расписания
// Должен вызываться внутри транзакции
func (r *Repository) RemoveException(ctx context.Context, professionalID int64, exceptionID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_exceptions").
		Where(squirrel.Eq{"id": exceptionID, "professional_id": professionalID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: RemoveException - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: RemoveException - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: RemoveException - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return 0, ErrExceptionNotFound
	}

	return r.bumpVersion(ctx, executor, professionalID)
}

// bumpVersion инкрементирует версию расписания мастера
// Создает строку schedules при первом обращении
func (r *Repository) bumpVersion(ctx context.Context, executor DBExecutor, professionalID int64) (int64, error) {
	query, args, err := psqlbuilder.Insert("schedules").
		Columns("professional_id", "version").
		Values(professionalID, 1).
		Suffix("ON CONFLICT (professional_id) DO UPDATE SET version = schedules.version + 1, updated_at = NOW() RETURNING version").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: bumpVersion - build query: %v", ErrBuildQuery, err)
	}

	var version int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		return 0, fmt.Errorf("%w: bumpVersion - scan version: %v", ErrScanRow, err)
	}

	return version, nil
}

// getWeek читает недельную таблицу окон мастера
func (r *Repository) getWeek(ctx context.Context, executor DBExecutor, professionalID int64) (domain.WeekSchedule, error) {
	query, args, err := psqlbuilder.Select("weekday", "enabled", "open_time", "close_time").
		From("schedule_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make(domain.WeekSchedule, 7)
	for rows.Next() {
		var (
			weekday   int
			enabled   bool
			openTime  types.TimeString
			closeTime types.TimeString
		)
		if err := rows.Scan(&weekday, &enabled, &openTime, &closeTime); err != nil {
			return nil, fmt.Errorf("%w: getWeek - scan window: %v", ErrScanRow, err)
		}

		openMinute, err := openTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: getWeek - open time: %v", ErrScanRow, err)
		}
		closeMinute, err := closeTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: getWeek - close time: %v", ErrScanRow, err)
		}

		week[time.Weekday(weekday)] = domain.DayWindow{
			Enabled:     enabled,
			OpenMinute:  openMinute,
			CloseMinute: closeMinute,
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getWeek - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// getExceptions читает все блокировки мастера
func (r *Repository) getExceptions(ctx context.Context, executor DBExecutor, professionalID int64) ([]domain.ScheduleException, error) {
	query, args, err := psqlbuilder.Select("id", "scope", "year", "month", "day", "full_day", "start_time", "end_time", "label").
		From("schedule_exceptions").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]domain.ScheduleException, 0)
	for rows.Next() {
		var (
			exc       domain.ScheduleException
			year      sql.NullInt64
			month     int
			startTime types.TimeString
			endTime   types.TimeString
		)
		if err := rows.Scan(&exc.ID, &exc.Scope, &year, &month, &exc.Day, &exc.FullDay, &startTime, &endTime, &exc.Label); err != nil {
			return nil, fmt.Errorf("%w: getExceptions - scan exception: %v", ErrScanRow, err)
		}

		exc.Month = time.Month(month)
		if year.Valid {
			exc.Year = int(year.Int64)
		}

		if !exc.FullDay {
			startMinute, err := startTime.Minutes()
			if err != nil {
				return nil, fmt.Errorf("%w: getExceptions - start time: %v", ErrScanRow, err)
			}
			endMinute, err := endTime.Minutes()
			if err != nil {
				return nil, fmt.Errorf("%w: getExceptions - end time: %v", ErrScanRow, err)
			}
			exc.StartMinute = &startMinute
			exc.EndMinute = &endMinute
		}

		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}
