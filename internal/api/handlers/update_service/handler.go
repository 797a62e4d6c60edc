package update_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgNotFound           = "Service not found"
)

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

// Handle PUT /api/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Некорректный id не может существовать
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid data: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
