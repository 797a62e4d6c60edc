package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	getAvailableSlots "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct{}

func (fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, getAvailableSlots.ErrInvalidDate
	}
	if date.Weekday() == time.Sunday {
		return &getAvailableSlots.Response{Date: date, Slots: []types.TimeString{}}, nil
	}
	return &getAvailableSlots.Response{Date: date, Slots: []types.TimeString{"08:00", "11:00"}}, nil
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{name: "open day", query: "?date=2024-01-01", wantStatus: http.StatusOK,
			wantBody: `{"date":"2024-01-01","available_slots":["08:00","11:00"]}`},
		{name: "closed day encodes empty list", query: "?date=2024-01-07", wantStatus: http.StatusOK,
			wantBody: `{"date":"2024-01-07","available_slots":[]}`},
		{name: "missing date", query: "", wantStatus: http.StatusBadRequest},
		{name: "malformed date", query: "?date=tomorrow", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(fakeUseCase{}, nopLogger{})
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/available-slots"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
