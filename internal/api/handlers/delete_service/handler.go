package delete_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/catalog"
)

const (
	msgNotFound = "Service not found"
	msgDeleted  = "Service deleted"
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

// Handle DELETE /api/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("DELETE /services/{id} - Service not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /services/{id} - Failed to delete service: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	admin, _ := middleware.AdminFromContext(r.Context())
	h.logger.Info("DELETE /services/{id} - Service deleted: id=%s, admin=%s", id, admin)
	handlers.RespondMessage(w, msgDeleted)
}
