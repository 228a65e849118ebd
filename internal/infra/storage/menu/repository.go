package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки postgres для нарушения unique constraint
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с меню услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пункт меню
// Дубликат имени в рамках тенанта ловится unique index (tenant_id, name)
func (r *Repository) Create(ctx context.Context, m *domain.Menu) (*domain.Menu, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("menus").
		Columns(
			"tenant_id",
			"name",
			"description",
			"price",
			"is_active",
		).
		Values(
			m.TenantID,
			m.Name,
			m.Description,
			m.Price,
			m.IsActive,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time

	return m, nil
}

// GetByID получает пункт меню по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Menu, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"description",
		"price",
		"is_active",
		"created_at",
	).
		From("menus").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.Menu
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&m.TenantID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.IsActive,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan menu: %v", ErrScanRow, err)
	}

	m.CreatedAt = createdAt.Time

	return &m, nil
}

// ListByTenant получает меню тенанта
// onlyActive=true ограничивает выдачу активными пунктами (публичная витрина)
func (r *Repository) ListByTenant(ctx context.Context, tenantID int64, onlyActive bool) ([]*domain.Menu, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"description",
		"price",
		"is_active",
		"created_at",
	).
		From("menus").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	menus := make([]*domain.Menu, 0)
	for rows.Next() {
		var m domain.Menu
		var createdAt sql.NullTime

		err := rows.Scan(
			&m.ID,
			&m.TenantID,
			&m.Name,
			&m.Description,
			&m.Price,
			&m.IsActive,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByTenant - scan row: %v", ErrScanRow, err)
		}

		m.CreatedAt = createdAt.Time

		menus = append(menus, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - rows error: %v", ErrScanRow, err)
	}

	return menus, nil
}

// Update обновляет пункт меню
func (r *Repository) Update(ctx context.Context, m *domain.Menu) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("menus").
		Set("name", m.Name).
		Set("description", m.Description).
		Set("price", m.Price).
		Set("is_active", m.IsActive).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMenuNotFound
	}

	return nil
}

// Delete удаляет пункт меню
// У броней с этим меню menu_id обнуляется на стороне БД (FK ON DELETE SET NULL)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("menus").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMenuNotFound
	}

	return nil
}
