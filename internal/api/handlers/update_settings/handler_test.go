package update_settings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/settings"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSettings struct{}

func (fakeSettings) Update(_ context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if strings.TrimSpace(req.WhatsAppNumber) == "" {
		return nil, fmt.Errorf("%w: whatsapp_number is required", settings.ErrInvalidInput)
	}
	return &models.SettingsResponse{ID: "s1", WhatsAppNumber: req.WhatsAppNumber, UpdatedAt: "2024-01-01T10:00:00Z"}, nil
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "updated",
			body:       `{"whatsapp_number":"+5511000000000"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"s1","whatsapp_number":"+5511000000000","updated_at":"2024-01-01T10:00:00Z"}`,
		},
		{
			name:       "empty number",
			body:       `{"whatsapp_number":" "}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"invalid input data: whatsapp_number is required"}`,
		},
		{
			name:       "malformed body",
			body:       `[`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(fakeSettings{}, nopLogger{}).
				Handle(rec, httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
