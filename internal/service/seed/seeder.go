// Package seed fills an empty database with the default admin, schedule,
// catalog and settings. Every step is skipped when its table has data.
package seed

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Credentials учетная запись администратора по умолчанию
type Credentials struct {
	Username string
	Password string
}

// Seeder начальное заполнение базы
type Seeder struct {
	admins       AdminRepository
	hours        HoursRepository
	services     ServiceRepository
	settings     SettingsRepository
	txManager    TransactionManager
	hashPassword func(string) (string, error)
	admin        Credentials
	whatsapp     string
	logger       Logger
}

// NewSeeder создает Seeder
func NewSeeder(
	admins AdminRepository,
	hours HoursRepository,
	services ServiceRepository,
	settings SettingsRepository,
	txManager TransactionManager,
	hashPassword func(string) (string, error),
	admin Credentials,
	whatsapp string,
	logger Logger,
) *Seeder {
	return &Seeder{
		admins:       admins,
		hours:        hours,
		services:     services,
		settings:     settings,
		txManager:    txManager,
		hashPassword: hashPassword,
		admin:        admin,
		whatsapp:     whatsapp,
		logger:       logger,
	}
}

// Run выполняет все шаги заполнения; повторный запуск ничего не меняет
func (s *Seeder) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{name: "admin", fn: s.seedAdmin},
		{name: "business hours", fn: s.seedHours},
		{name: "services", fn: s.seedServices},
		{name: "settings", fn: s.seedSettings},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			s.logger.Error("Seed: %s failed: %v", step.name, err)
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}

	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	count, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hashPassword(s.admin.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.admins.Create(ctx, &domain.Admin{Username: s.admin.Username, PasswordHash: hash}); err != nil {
		return err
	}

	s.logger.Info("Seed: default admin created: username=%s", s.admin.Username)
	return nil
}

func (s *Seeder) seedHours(ctx context.Context) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := s.hours.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, h := range DefaultBusinessHours() {
			if err := s.hours.Create(txCtx, h); err != nil {
				return err
			}
		}

		s.logger.Info("Seed: default business hours created")
		return nil
	})
}

func (s *Seeder) seedServices(ctx context.Context) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := s.services.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, svc := range DefaultServices() {
			if _, err := s.services.Create(txCtx, svc); err != nil {
				return err
			}
		}

		s.logger.Info("Seed: default services created")
		return nil
	})
}

func (s *Seeder) seedSettings(ctx context.Context) error {
	created, err := s.settings.CreateIfMissing(ctx, s.whatsapp)
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("Seed: default settings created")
	}
	return nil
}
