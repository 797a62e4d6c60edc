package upload_image

import (
	"io"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/images/models"
)

type ImageService interface {
	Encode(contentType string, file io.Reader) (*models.UploadImageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
