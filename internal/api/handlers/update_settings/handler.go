package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/settings"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/settings/models"
)

const msgInvalidRequestBody = "Invalid request body"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("PUT /settings - Invalid data: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("PUT /settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	admin, _ := middleware.AdminFromContext(r.Context())
	h.logger.Info("PUT /settings - Updated: whatsapp_number=%s, admin=%s", result.WhatsAppNumber, admin)
	handlers.RespondJSON(w, http.StatusOK, result)
}
