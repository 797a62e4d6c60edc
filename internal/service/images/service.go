// Package images turns uploaded files into self-contained data URLs.
package images

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/images/models"
)

const defaultContentType = "application/octet-stream"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service кодирует изображения в data URL без сохранения
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса изображений
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// Encode читает файл целиком и возвращает data:<contentType>;base64,<payload>
func (s *Service) Encode(contentType string, file io.Reader) (*models.UploadImageResponse, error) {
	if file == nil {
		return nil, ErrEmptyFile
	}

	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		contentType = defaultContentType
	}

	var b strings.Builder
	b.WriteString("data:")
	b.WriteString(contentType)
	b.WriteString(";base64,")

	enc := base64.NewEncoder(base64.StdEncoding, &b)
	n, err := io.Copy(enc, file)
	if err != nil {
		s.logger.Error("UploadImage: read file: %v", err)
		return nil, fmt.Errorf("%w: read file: %v", ErrInternal, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrInternal, err)
	}

	s.logger.Info("UploadImage: encoded %d bytes of %s", n, contentType)
	return &models.UploadImageResponse{ImageURL: b.String()}, nil
}
