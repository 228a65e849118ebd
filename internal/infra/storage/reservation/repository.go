package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки postgres для нарушения unique constraint
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронь одним атомарным INSERT
// Конфликт за слот разрешается unique index (tenant_id, date, time_slot):
// при параллельных попытках ровно одна вставка проходит, остальные
// получают ErrSlotTaken. Никакой предварительной проверки существования
// здесь нет и быть не должно - это гонка.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"tenant_id",
			"menu_id",
			"customer_name",
			"customer_phone",
			"customer_email",
			"date",
			"time_slot",
		).
		Values(
			res.TenantID,
			res.MenuID,
			res.CustomerName,
			res.CustomerPhone,
			res.CustomerEmail,
			res.Date,
			res.TimeSlot,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// GetByID получает бронь по ID с присоединенными данными меню
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ReservationDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.tenant_id",
		"r.menu_id",
		"r.customer_name",
		"r.customer_phone",
		"r.customer_email",
		"r.date",
		"r.time_slot",
		"r.created_at",
		"m.name",
		"m.price",
	).
		From("reservations r").
		LeftJoin("menus m ON m.id = r.menu_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var detail domain.ReservationDetail
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&detail.ID,
		&detail.TenantID,
		&detail.MenuID,
		&detail.CustomerName,
		&detail.CustomerPhone,
		&detail.CustomerEmail,
		&detail.Date,
		&detail.TimeSlot,
		&createdAt,
		&detail.MenuName,
		&detail.MenuPrice,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	detail.CreatedAt = createdAt.Time

	return &detail, nil
}

// ListByTenantAndDateRange получает все брони тенанта за период [from, to]
// одним запросом - снимок занятости для календаря консистентен в рамках вызова
func (r *Repository) ListByTenantAndDateRange(ctx context.Context, tenantID int64, from, to time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"menu_id",
		"customer_name",
		"customer_phone",
		"customer_email",
		"date",
		"time_slot",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC, time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenantAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenantAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListByTenant получает последние брони тенанта (новые первыми)
// limit <= 0 означает без ограничения
func (r *Repository) ListByTenant(ctx context.Context, tenantID int64, limit int) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"tenant_id",
		"menu_id",
		"customer_name",
		"customer_phone",
		"customer_email",
		"date",
		"time_slot",
		"created_at",
	).
		From("reservations").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("date DESC, time_slot DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
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

	return r.scanReservations(rows)
}

// CountByTenantAndMonth возвращает количество броней по датам месяца
// Ключи результата - даты в формате YYYY-MM-DD; даты без броней отсутствуют
func (r *Repository) CountByTenantAndMonth(ctx context.Context, tenantID int64, year int, month time.Month) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query, args, err := psqlbuilder.Select("date", "COUNT(id)").
		From("reservations").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"date": monthStart}).
		Where(squirrel.Lt{"date": nextMonth}).
		GroupBy("date").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByTenantAndMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByTenantAndMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByTenantAndMonth - scan row: %v", ErrScanRow, err)
		}
		counts[date.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByTenantAndMonth - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// Delete удаляет бронь (физическое удаление - изменение брони это удаление + создание)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.TenantID,
			&res.MenuID,
			&res.CustomerName,
			&res.CustomerPhone,
			&res.CustomerEmail,
			&res.Date,
			&res.TimeSlot,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
