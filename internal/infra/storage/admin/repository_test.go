package admin

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestGetByUsername(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at FROM admins WHERE username = $1")).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(id.String(), "admin", "$2a$10$hash", time.Now()))

	a, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, "$2a$10$hash", a.PasswordHash)
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM admins").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrAdminNotFound)
}

func TestCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO admins (id,username,password_hash) VALUES ($1,$2,$3) RETURNING created_at")).
			WithArgs(sqlmock.AnyArg(), "admin", "hash").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		a := &domain.Admin{Username: "admin", PasswordHash: "hash"}
		require.NoError(t, repo.Create(context.Background(), a))
		assert.NotEqual(t, uuid.Nil, a.ID)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("INSERT INTO admins").WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(context.Background(), &domain.Admin{Username: "admin", PasswordHash: "hash"})
		require.ErrorIs(t, err, ErrAdminExists)
	})
}

func TestCount(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM admins")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
