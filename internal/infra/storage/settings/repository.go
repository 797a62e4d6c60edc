package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/psqlbuilder"
)

// Repository хранит единственную запись настроек.
// Колонка singleton с уникальным индексом не дает появиться второй строке.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает запись настроек или ErrSettingsNotFound
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "whatsapp_number", "updated_at").
		From("settings").
		Where(squirrel.Eq{"singleton": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.WhatsAppNumber, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Upsert обновляет запись настроек или создает ее с новым ID
func (r *Repository) Upsert(ctx context.Context, whatsappNumber string) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns("id", "singleton", "whatsapp_number", "updated_at").
		Values(uuid.New(), true, whatsappNumber, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (singleton) DO UPDATE SET whatsapp_number = EXCLUDED.whatsapp_number, updated_at = EXCLUDED.updated_at " +
			"RETURNING id, whatsapp_number, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.WhatsAppNumber, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return &s, nil
}

// CreateIfMissing создает запись настроек, только если ее нет
func (r *Repository) CreateIfMissing(ctx context.Context, whatsappNumber string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns("id", "singleton", "whatsapp_number").
		Values(uuid.New(), true, whatsappNumber).
		Suffix("ON CONFLICT (singleton) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfMissing - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfMissing - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfMissing - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}
