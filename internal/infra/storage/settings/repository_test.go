package settings

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestGet(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	updatedAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, whatsapp_number, updated_at FROM settings WHERE singleton = $1")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "whatsapp_number", "updated_at"}).
			AddRow(id.String(), "+5511900000000", updatedAt))

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "+5511900000000", s.WhatsAppNumber)
	assert.Equal(t, updatedAt, s.UpdatedAt)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "whatsapp_number", "updated_at"}))

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO settings (id,singleton,whatsapp_number,updated_at) VALUES ($1,$2,$3,NOW()) " +
			"ON CONFLICT (singleton) DO UPDATE SET whatsapp_number = EXCLUDED.whatsapp_number")).
		WithArgs(sqlmock.AnyArg(), true, "+5511911111111").
		WillReturnRows(sqlmock.NewRows([]string{"id", "whatsapp_number", "updated_at"}).
			AddRow(id.String(), "+5511911111111", time.Now()))

	s, err := repo.Upsert(context.Background(), "+5511911111111")
	require.NoError(t, err)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, "+5511911111111", s.WhatsAppNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfMissing(t *testing.T) {
	query := regexp.QuoteMeta("ON CONFLICT (singleton) DO NOTHING")

	t.Run("created", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 1))

		created, err := repo.CreateIfMissing(context.Background(), "+5588998376642")
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("already present", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))

		created, err := repo.CreateIfMissing(context.Background(), "+5588998376642")
		require.NoError(t, err)
		assert.False(t, created)
	})
}
