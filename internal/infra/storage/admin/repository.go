package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/pgerrors"
	"github.com/m04kA/SMC-BeautyBooking/pkg/psqlbuilder"
)

// Repository репозиторий учетных записей администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUsername получает администратора по имени пользователя
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "password_hash", "created_at").
		From("admins").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Admin
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan admin: %v", ErrScanRow, err)
	}

	return &a, nil
}

// Create сохраняет нового администратора
func (r *Repository) Create(ctx context.Context, a *domain.Admin) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("admins").
		Columns("id", "username", "password_hash").
		Values(a.ID, a.Username, a.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err, "") {
			return ErrAdminExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Count возвращает количество администраторов
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("admins").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
