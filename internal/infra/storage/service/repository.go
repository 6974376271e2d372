package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг
// Каталог наполняется внешним контуром управления профилем,
// здесь он используется только для чтения
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу мастера по ID
func (r *Repository) GetByID(ctx context.Context, professionalID, serviceID int64) (*domain.ServiceDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "professional_id", "name", "duration_minutes", "price", "created_at", "updated_at").
		From("services").
		Where(squirrel.Eq{"id": serviceID, "professional_id": professionalID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		svc       domain.ServiceDefinition
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.ProfessionalID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.Price,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}

// ListByProfessional получает все услуги мастера
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.ServiceDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "professional_id", "name", "duration_minutes", "price", "created_at", "updated_at").
		From("services").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.ServiceDefinition, 0)
	for rows.Next() {
		var (
			svc       domain.ServiceDefinition
			createdAt sql.NullTime
			updatedAt sql.NullTime
		)
		if err := rows.Scan(&svc.ID, &svc.ProfessionalID, &svc.Name, &svc.DurationMinutes, &svc.Price, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByProfessional - scan service: %v", ErrScanRow, err)
		}
		svc.CreatedAt = createdAt.Time
		svc.UpdatedAt = updatedAt.Time
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
