package auth

import (
	"context"
	"errors"
	"fmt"

	adminRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/auth/models"
)

// Service вход администратора и проверка токенов
type Service struct {
	adminRepo AdminRepository
	tokens    *TokenIssuer
	logger    Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(adminRepo AdminRepository, tokens *TokenIssuer, logger Logger) *Service {
	return &Service{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login проверяет учетные данные и выпускает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	s.logger.Info("Login: attempt for username=%s", req.Username)

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown username=%s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !CheckPassword(admin.PasswordHash, req.Password) {
		s.logger.Warn("Login: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(admin.Username)
	if err != nil {
		s.logger.Error("Login: failed to issue token for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: token issued for username=%s, expires at %s", admin.Username, expiresAt.Format("2006-01-02 15:04:05"))
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   models.TokenTypeBearer,
	}, nil
}

// Authenticate проверяет токен и возвращает имя администратора
func (s *Service) Authenticate(_ context.Context, token string) (string, error) {
	username, err := s.tokens.Parse(token)
	if err != nil {
		s.logger.Warn("Authenticate: %v", err)
		return "", err
	}
	return username, nil
}
