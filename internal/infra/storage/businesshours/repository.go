package businesshours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/psqlbuilder"
)

var hoursColumns = []string{
	"id",
	"day_of_week",
	"open_time",
	"close_time",
	"is_open",
	"interval_minutes",
}

// Repository репозиторий расписания по дням недели
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает расписание, отсортированное по дню недели
func (r *Repository) List(ctx context.Context) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0, domain.MaxWeekday+1)
	for rows.Next() {
		h, err := scanHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetByDay получает расписание на день недели
func (r *Repository) GetByDay(ctx context.Context, day int) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{"day_of_week": day}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	h, err := scanHours(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - scan row: %v", ErrScanRow, err)
	}

	return h, nil
}

// Create сохраняет расписание дня (используется при начальном заполнении)
func (r *Repository) Create(ctx context.Context, h *domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns(hoursColumns...).
		Values(h.ID, h.DayOfWeek, h.OpenTime, h.CloseTime, h.IsOpen, h.IntervalMinutes).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Update применяет только заданные поля расписания дня
func (r *Repository) Update(ctx context.Context, day int, upd domain.BusinessHoursUpdate) (*domain.BusinessHours, error) {
	if upd.IsEmpty() {
		return r.GetByDay(ctx, day)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("business_hours")
	if upd.OpenTime != nil {
		updateBuilder = updateBuilder.Set("open_time", *upd.OpenTime)
	}
	if upd.CloseTime != nil {
		updateBuilder = updateBuilder.Set("close_time", *upd.CloseTime)
	}
	if upd.IsOpen != nil {
		updateBuilder = updateBuilder.Set("is_open", *upd.IsOpen)
	}
	if upd.IntervalMinutes != nil {
		updateBuilder = updateBuilder.Set("interval_minutes", *upd.IntervalMinutes)
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"day_of_week": day}).
		Suffix("RETURNING id, day_of_week, open_time, close_time, is_open, interval_minutes").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	h, err := scanHours(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return h, nil
}

// Count возвращает количество записей расписания
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("business_hours").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHours(row rowScanner) (*domain.BusinessHours, error) {
	var h domain.BusinessHours

	err := row.Scan(
		&h.ID,
		&h.DayOfWeek,
		&h.OpenTime,
		&h.CloseTime,
		&h.IsOpen,
		&h.IntervalMinutes,
	)
	if err != nil {
		return nil, err
	}

	return &h, nil
}
