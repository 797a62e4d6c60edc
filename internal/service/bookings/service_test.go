package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	bookings   []*domain.Booking
	gotFilter  domain.BookingsFilter
	updateErr  error
	listErr    error
	gotStatus  domain.BookingStatus
	updateCall int
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	return f.bookings, f.listErr
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status domain.BookingStatus) error {
	f.updateCall++
	f.gotStatus = status
	return f.updateErr
}

func TestList_IncludesCancelled(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{bookings: []*domain.Booking{
		{ID: uuid.New(), CustomerName: "Ana", BookingDate: date, StartTime: "08:00", Status: domain.StatusCancelled},
	}}
	svc := NewService(repo, nopLogger{})

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.True(t, repo.gotFilter.IncludeInactive)
	assert.Nil(t, repo.gotFilter.Date)
	assert.Equal(t, "2024-06-03", list[0].Date)
	assert.Equal(t, "08:00", list[0].Time)
	assert.Equal(t, "cancelled", list[0].Status)
}

func TestList_Error(t *testing.T) {
	svc := NewService(&fakeRepo{listErr: errors.New("boom")}, nopLogger{})

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		repoErr   error
		wantErr   error
		wantCalls int
	}{
		{name: "confirm", status: "confirmed", wantCalls: 1},
		{name: "cancel", status: "cancelled", wantCalls: 1},
		{name: "invalid status", status: "done", wantErr: ErrInvalidStatus},
		{name: "not found", status: "pending", repoErr: bookingRepo.ErrBookingNotFound, wantErr: ErrBookingNotFound, wantCalls: 1},
		{name: "slot taken", status: "pending", repoErr: bookingRepo.ErrSlotTaken, wantErr: ErrSlotTaken, wantCalls: 1},
		{name: "db error", status: "pending", repoErr: errors.New("boom"), wantErr: ErrInternal, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{updateErr: tt.repoErr}
			svc := NewService(repo, nopLogger{})

			err := svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: tt.status})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, domain.BookingStatus(tt.status), repo.gotStatus)
			}
			assert.Equal(t, tt.wantCalls, repo.updateCall)
		})
	}
}
