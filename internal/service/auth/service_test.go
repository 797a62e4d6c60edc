package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	adminRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAdminRepo struct {
	admins map[string]*domain.Admin
	err    error
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.admins[username]
	if !ok {
		return nil, adminRepo.ErrAdminNotFound
	}
	return a, nil
}

func newTestService(t *testing.T) (*Service, *TokenIssuer) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAdminRepo{admins: map[string]*domain.Admin{
		"admin": {Username: "admin", PasswordHash: string(hash)},
	}}
	issuer := NewTokenIssuer("test-secret", domain.DefaultTokenTTL)

	return NewService(repo, issuer, nopLogger{}), issuer
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "admin", password: "admin123"},
		{name: "wrong password", username: "admin", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "root", password: "admin123", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), &models.LoginRequest{Username: tt.username, Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "bearer", resp.TokenType)
			assert.NotEmpty(t, resp.AccessToken)
		})
	}
}

func TestLogin_RepositoryError(t *testing.T) {
	svc := NewService(&fakeAdminRepo{err: errors.New("db down")}, NewTokenIssuer("s", time.Hour), nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "x"})
	require.ErrorIs(t, err, ErrInternal)
}

func TestLoginThenAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	username, err := svc.Authenticate(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestAuthenticate_Rejects(t *testing.T) {
	svc, issuer := newTestService(t)

	valid, _, err := issuer.Issue("admin")
	require.NoError(t, err)

	expiredIssuer := NewTokenIssuer("test-secret", domain.DefaultTokenTTL)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }
	expired, _, err := expiredIssuer.Issue("admin")
	require.NoError(t, err)

	otherSecret, _, err := NewTokenIssuer("other-secret", time.Hour).Issue("admin")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "admin",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"expired":        expired,
		"tampered":       valid[:len(valid)-2] + "xx",
		"other secret":   otherSecret,
		"malformed":      "not-a-jwt",
		"missing sub":    noSubject,
		"missing expiry": noExpiry,
		"empty":          "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenIssuer_Expiry(t *testing.T) {
	issuer := NewTokenIssuer("secret", domain.DefaultTokenTTL)
	fixed := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }

	_, expiresAt, err := issuer.Issue("admin")
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(24*time.Hour), expiresAt)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
}
