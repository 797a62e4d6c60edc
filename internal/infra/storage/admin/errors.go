package admin

import "errors"

var (
	// ErrAdminNotFound возвращается, когда администратор не найден
	ErrAdminNotFound = errors.New("admin.repository: admin not found")

	// ErrAdminExists возвращается при создании администратора с занятым username
	ErrAdminExists = errors.New("admin.repository: admin already exists")

	ErrBuildQuery = errors.New("admin.repository: failed to build query")
	ErrExecQuery  = errors.New("admin.repository: failed to execute query")
	ErrScanRow    = errors.New("admin.repository: failed to scan row")
)
