package tenant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// tenantColumns полный набор колонок тенанта в порядке сканирования
var tenantColumns = []string{
	"id",
	"name",
	"slug",
	"owner_id",
	"owner_email",
	"owner_phone",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"advance_hours",
	"monday_open",
	"tuesday_open",
	"wednesday_open",
	"thursday_open",
	"friday_open",
	"saturday_open",
	"sunday_open",
	"notification_email",
	"customer_email_subject",
	"customer_email_message",
	"owner_email_subject",
	"owner_email_message",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с тенантами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тенантов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает тенанта по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug получает тенанта по URL-идентификатору
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tenantColumns...).
		From("tenants").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var t domain.Tenant
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.OwnerID,
		&t.OwnerEmail,
		&t.OwnerPhone,
		&t.Schedule.OpenTime,
		&t.Schedule.CloseTime,
		&t.Schedule.SlotDurationMinutes,
		&t.Schedule.AdvanceHours,
		&t.Schedule.OpenDays[0],
		&t.Schedule.OpenDays[1],
		&t.Schedule.OpenDays[2],
		&t.Schedule.OpenDays[3],
		&t.Schedule.OpenDays[4],
		&t.Schedule.OpenDays[5],
		&t.Schedule.OpenDays[6],
		&t.Notifications.NotificationEmail,
		&t.Notifications.CustomerSubject,
		&t.Notifications.CustomerMessage,
		&t.Notifications.OwnerSubject,
		&t.Notifications.OwnerMessage,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tenant: %v", ErrScanRow, op, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// UpdateSchedule обновляет конфигурацию расписания целиком
// Вызывается внутри транзакции сервиса: конфигурация провалидирована
// до записи, частично-валидное состояние не попадает в БД
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, cfg *domain.ScheduleConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tenants").
		Set("open_time", cfg.OpenTime).
		Set("close_time", cfg.CloseTime).
		Set("slot_duration_minutes", cfg.SlotDurationMinutes).
		Set("advance_hours", cfg.AdvanceHours).
		Set("monday_open", cfg.OpenDays[0]).
		Set("tuesday_open", cfg.OpenDays[1]).
		Set("wednesday_open", cfg.OpenDays[2]).
		Set("thursday_open", cfg.OpenDays[3]).
		Set("friday_open", cfg.OpenDays[4]).
		Set("saturday_open", cfg.OpenDays[5]).
		Set("sunday_open", cfg.OpenDays[6]).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// UpdateNotificationSettings обновляет шаблоны и адрес уведомлений тенанта
func (r *Repository) UpdateNotificationSettings(ctx context.Context, id int64, settings *domain.NotificationSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tenants").
		Set("notification_email", settings.NotificationEmail).
		Set("customer_email_subject", settings.CustomerSubject).
		Set("customer_email_message", settings.CustomerMessage).
		Set("owner_email_subject", settings.OwnerSubject).
		Set("owner_email_message", settings.OwnerMessage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateNotificationSettings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNotificationSettings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateNotificationSettings - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTenantNotFound
	}

	return nil
}
