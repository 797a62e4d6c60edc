package images

import "errors"

var (
	// ErrEmptyFile возвращается, когда файл не передан
	ErrEmptyFile = errors.New("file is required")

	// ErrInternal возвращается при ошибке чтения файла
	ErrInternal = errors.New("images.service: internal error")
)
