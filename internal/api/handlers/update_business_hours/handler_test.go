package update_business_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/hours"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/hours/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeHours struct{}

func (fakeHours) Update(_ context.Context, day int, req *models.UpdateHoursRequest) (*models.BusinessHoursResponse, error) {
	if !domain.IsValidWeekday(day) {
		return nil, hours.ErrInvalidWeekday
	}
	if req.IntervalMinutes != nil && *req.IntervalMinutes <= 0 {
		return nil, hours.ErrInvalidInput
	}
	return &models.BusinessHoursResponse{DayOfWeek: day, OpenTime: "08:00", CloseTime: "18:00", IsOpen: true, IntervalMinutes: 90}, nil
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		day        string
		body       string
		wantStatus int
	}{
		{name: "ok", day: "0", body: `{"is_open":true}`, wantStatus: http.StatusOK},
		{name: "day out of range", day: "7", body: `{"is_open":true}`, wantStatus: http.StatusBadRequest},
		{name: "day not a number", day: "monday", body: `{"is_open":true}`, wantStatus: http.StatusBadRequest},
		{name: "bad interval", day: "1", body: `{"interval_minutes":0}`, wantStatus: http.StatusBadRequest},
		{name: "bad body", day: "1", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/api/business-hours/{day}", NewHandler(fakeHours{}, nopLogger{}).Handle)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/business-hours/"+tt.day, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
