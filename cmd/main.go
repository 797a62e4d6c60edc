package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	createBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_available_slots"
	getSettingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_settings"
	healthHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_bookings"
	listBusinessHoursHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_business_hours"
	listServicesHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_services"
	loginHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/login"
	updateBookingStatusHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_booking_status"
	updateBusinessHoursHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_business_hours"
	updateServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_service"
	updateSettingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_settings"
	uploadImageHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/upload_image"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/router"
	"github.com/m04kA/SMC-BeautyBooking/internal/config"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	adminRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	hoursRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/migrator"
	serviceRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/service"
	settingsRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/settings"
	authService "github.com/m04kA/SMC-BeautyBooking/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-BeautyBooking/internal/service/catalog"
	hoursService "github.com/m04kA/SMC-BeautyBooking/internal/service/hours"
	imagesService "github.com/m04kA/SMC-BeautyBooking/internal/service/images"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/seed"
	settingsService "github.com/m04kA/SMC-BeautyBooking/internal/service/settings"
	createBookingUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/txmanager"
)

const seedTimeout = 30 * time.Second

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BeautyBooking...")
	log.Debug("Config: http_port=%d, db=%s, metrics=%t, seed=%t, cors=%v, upload_max_bytes=%d",
		cfg.Server.HTTPPort, cfg.Database.DBName, cfg.Metrics.Enabled, cfg.Seed.Enabled, cfg.CORS.Origins, cfg.Upload.MaxBytes)

	if cfg.Auth.UsesDevelopmentSecret() {
		log.Warn("JWT_SECRET_KEY is not set, using the development signing secret")
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (db=%s)", cfg.Database.DBName)

	// Применяем миграции
	if err := migrator.Up(db, cfg.Database.DBName, log); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	// Обертка с метриками; без метрик *Metrics = nil и ничего не пишется
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	adminRepository := adminRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	hoursRepository := hoursRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)

	// Начальные данные
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(
			adminRepository,
			hoursRepository,
			serviceRepository,
			settingsRepository,
			txMgr,
			authService.HashPassword,
			seed.Credentials{Username: cfg.Seed.AdminUsername, Password: cfg.Seed.AdminPassword},
			domain.DefaultWhatsAppNumber,
			log,
		)

		seedCtx, cancelSeed := context.WithTimeout(context.Background(), seedTimeout)
		err := seeder.Run(seedCtx)
		cancelSeed()
		if err != nil {
			log.Fatal("Failed to seed database: %v", err)
		}
	}

	// Инициализируем сервисы
	tokens := authService.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	authSvc := authService.NewService(adminRepository, tokens, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	hoursSvc := hoursService.NewService(hoursRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	imagesSvc := imagesService.NewService(log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		settingsRepository,
		txMgr,
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		hoursRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listBusinessHours := listBusinessHoursHandler.NewHandler(hoursSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(hoursSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	uploadImage := uploadImageHandler.NewHandler(imagesSvc, cfg.Upload.MaxBytes, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	handler := router.New(
		router.Config{
			CORSOrigins:   cfg.CORS.Origins,
			SlowThreshold: time.Duration(cfg.Server.SlowRequestMs) * time.Millisecond,
			Metrics:       metricsCollector,
			MetricsPath:   cfg.Metrics.Path,
		},
		router.Handlers{
			Health:              health.Handle,
			Login:               login.Handle,
			ListServices:        listServices.Handle,
			GetAvailableSlots:   getAvailableSlots.Handle,
			CreateBooking:       createBooking.Handle,
			ListBusinessHours:   listBusinessHours.Handle,
			GetSettings:         getSettings.Handle,
			CreateService:       createService.Handle,
			UpdateService:       updateService.Handle,
			DeleteService:       deleteService.Handle,
			ListBookings:        listBookings.Handle,
			UpdateBookingStatus: updateBookingStatus.Handle,
			UpdateBusinessHours: updateBusinessHours.Handle,
			UpdateSettings:      updateSettings.Handle,
			UploadImage:         uploadImage.Handle,
		},
		authSvc,
		log,
	)
	if metricsCollector != nil {
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
