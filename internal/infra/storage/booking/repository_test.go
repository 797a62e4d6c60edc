package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func testDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, "2024-06-03")
	require.NoError(t, err)
	return d
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	date := testDate(t)
	serviceID := uuid.New()
	createdAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO bookings (id,customer_name,phone,service_id,service_name,booking_date,start_time,status) " +
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING created_at")).
		WithArgs(sqlmock.AnyArg(), "Ana", "+5511999999999", serviceID.String(), "Cat Eye", date, "09:30", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	created, err := repo.Create(context.Background(), &domain.Booking{
		CustomerName: "Ana",
		Phone:        "+5511999999999",
		ServiceID:    serviceID,
		ServiceName:  "Cat Eye",
		BookingDate:  date,
		StartTime:    types.TimeString("09:30"),
		Status:       domain.StatusPending,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_SlotTaken(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505", Constraint: ActiveSlotIndex})

	_, err := repo.Create(context.Background(), &domain.Booking{
		ServiceID:   uuid.New(),
		BookingDate: testDate(t),
		StartTime:   "09:30",
		Status:      domain.StatusPending,
	})

	require.ErrorIs(t, err, ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_SerializationFailureIsNotSlotTaken(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		ServiceID:   uuid.New(),
		BookingDate: testDate(t),
		StartTime:   "08:00",
		Status:      domain.StatusPending,
	})

	require.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrSlotTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Booking{StartTime: "09:30"})

	require.ErrorIs(t, err, ErrExecQuery)
}

func TestList_AllActiveNewestFirst(t *testing.T) {
	repo, mock := newRepo(t)
	date := testDate(t)

	rows := sqlmock.NewRows(bookingColumns).
		AddRow(uuid.NewString(), "Ana", "+55", uuid.NewString(), "Capping", date, "08:00", "pending", date).
		AddRow(uuid.NewString(), "Bia", "+55", uuid.NewString(), "Capping", date, "09:30", "confirmed", date)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings WHERE status <> $1 ORDER BY booking_date DESC, start_time DESC LIMIT 1000")).
		WithArgs("cancelled").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_IncludeInactive(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings ORDER BY booking_date DESC, start_time DESC LIMIT 1000")).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	list, err := repo.List(context.Background(), domain.BookingsFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DateInTransactionLocksRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := dbmetrics.Wrap(db, nil)
	repo := NewRepository(wrapped)
	date := testDate(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings WHERE booking_date = $1 AND status <> $2 ORDER BY start_time ASC LIMIT 1000 FOR UPDATE")).
		WithArgs("2024-06-03", "cancelled").
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	mock.ExpectRollback()

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.List(dbmetrics.WithTx(context.Background(), tx), domain.BookingsFilter{Date: &date})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookedTimes(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT start_time FROM bookings WHERE booking_date = $1 AND status <> $2 ORDER BY start_time ASC")).
		WithArgs("2024-06-03", "cancelled").
		WillReturnRows(sqlmock.NewRows([]string{"start_time"}).AddRow("08:00").AddRow("11:00"))

	times, err := repo.BookedTimes(context.Background(), testDate(t))
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00", "11:00"}, times)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.New()
	query := regexp.QuoteMeta("UPDATE bookings SET status = $1 WHERE id = $2 AND status IS DISTINCT FROM $3")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).
					WithArgs("confirmed", id.String(), "confirmed").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no row changed",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrBookingNotFound,
		},
		{
			name: "slot held by another booking",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).
					WillReturnError(&pq.Error{Code: "23505", Constraint: ActiveSlotIndex})
			},
			wantErr: ErrSlotTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tt.setup(mock)

			err := repo.UpdateStatus(context.Background(), id, domain.StatusConfirmed)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
