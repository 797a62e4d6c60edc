package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-BeautyBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// ActiveSlotIndex уникальный частичный индекс по (booking_date, start_time) для неотмененных записей
const ActiveSlotIndex = "bookings_active_slot_uidx"

var bookingColumns = []string{
	"id",
	"customer_name",
	"phone",
	"service_id",
	"service_name",
	"booking_date",
	"start_time",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Нарушение уникального индекса активного слота возвращается как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"customer_name",
			"phone",
			"service_id",
			"service_name",
			"booking_date",
			"start_time",
			"status",
		).
		Values(
			booking.ID,
			booking.CustomerName,
			booking.Phone,
			booking.ServiceID,
			booking.ServiceName,
			booking.BookingDate,
			booking.StartTime,
			booking.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err, ActiveSlotIndex) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру.
// Без даты сортирует по дате и времени (DESC), для конкретной даты по времени (ASC).
// Внутри транзакции выборка на дату блокирует строки (FOR UPDATE).
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC", "start_time DESC")
	}

	limit := filter.Limit
	if limit == 0 {
		limit = domain.ListLimit
	}
	selectBuilder = selectBuilder.Limit(limit)

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// BookedTimes возвращает время начала всех активных бронирований на дату
func (r *Repository) BookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: BookedTimes - scan start_time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// UpdateStatus обновляет статус бронирования.
// Возвращает ErrBookingNotFound, если ни одна строка не изменилась
// (нет такого ID или статус уже установлен).
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("status IS DISTINCT FROM ?", status)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsUniqueViolation(err, ActiveSlotIndex) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.Phone,
		&booking.ServiceID,
		&booking.ServiceName,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
