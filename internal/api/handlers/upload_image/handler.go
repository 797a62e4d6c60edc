package upload_image

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/images"
)

const (
	fileField = "file"

	msgFileRequired = "file is required"
	msgFileTooLarge = "file is too large"
)

type Handler struct {
	service  ImageService
	maxBytes int64
	logger   Logger
}

// NewHandler maxBytes <= 0 отключает ограничение размера
func NewHandler(service ImageService, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		service:  service,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle POST /api/upload-image (multipart, поле file)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	file, header, err := r.FormFile(fileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("POST /upload-image - File too large: %v", err)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		h.logger.Warn("POST /upload-image - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgFileRequired)
		return
	}
	defer file.Close()

	result, err := h.service.Encode(header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, images.ErrEmptyFile) {
			handlers.RespondBadRequest(w, msgFileRequired)
			return
		}
		h.logger.Error("POST /upload-image - Failed to encode file %q: %v", header.Filename, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /upload-image - Encoded %q, %d bytes", header.Filename, header.Size)
	handlers.RespondJSON(w, http.StatusOK, result)
}
