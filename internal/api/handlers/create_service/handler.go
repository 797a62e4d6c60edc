package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog/models"
)

const msgInvalidRequestBody = "Invalid request body"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /services - Invalid data: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /services - Failed to create service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services - Service created: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
