// Package router собирает HTTP маршруты сервиса.
package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

// Handlers обработчики эндпоинтов
type Handlers struct {
	Health http.HandlerFunc

	// Публичные
	Login             http.HandlerFunc
	ListServices      http.HandlerFunc
	GetAvailableSlots http.HandlerFunc
	CreateBooking     http.HandlerFunc
	ListBusinessHours http.HandlerFunc
	GetSettings       http.HandlerFunc

	// Администратор
	CreateService       http.HandlerFunc
	UpdateService       http.HandlerFunc
	DeleteService       http.HandlerFunc
	ListBookings        http.HandlerFunc
	UpdateBookingStatus http.HandlerFunc
	UpdateBusinessHours http.HandlerFunc
	UpdateSettings      http.HandlerFunc
	UploadImage         http.HandlerFunc
}

// Config параметры роутера
type Config struct {
	CORSOrigins   []string
	SlowThreshold time.Duration
	// Metrics nil отключает метрики и /metrics
	Metrics     *metrics.Metrics
	MetricsPath string
}

// New возвращает корневой обработчик: маршруты, auth, метрики, CORS и логирование запросов
func New(cfg Config, h Handlers, authenticator middleware.Authenticator, logger middleware.Logger) http.Handler {
	r := mux.NewRouter()

	if cfg.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.Metrics))
		r.Handle(cfg.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	api.HandleFunc("/services", h.ListServices).Methods(http.MethodGet)

	api.HandleFunc("/bookings/available-slots", h.GetAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)

	api.HandleFunc("/business-hours", h.ListBusinessHours).Methods(http.MethodGet)
	api.HandleFunc("/settings", h.GetSettings).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <token>)
	// ============================================================

	// Тот же путь с другим методом не совпадает с публичным маршрутом и доходит сюда
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authenticator, logger))

	// --- Услуги ---
	protected.HandleFunc("/services", h.CreateService).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id}", h.UpdateService).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id}", h.DeleteService).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", h.ListBookings).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/status", h.UpdateBookingStatus).Methods(http.MethodPut)

	// --- Расписание и настройки ---
	protected.HandleFunc("/business-hours/{day}", h.UpdateBusinessHours).Methods(http.MethodPut)
	protected.HandleFunc("/settings", h.UpdateSettings).Methods(http.MethodPut)

	// --- Изображения ---
	protected.HandleFunc("/upload-image", h.UploadImage).Methods(http.MethodPost)

	// CORS и логирование оборачивают весь роутер, чтобы preflight не упирался в 405
	var handler http.Handler = r
	handler = middleware.CORS(cfg.CORSOrigins)(handler)
	handler = middleware.RequestLogger(logger, cfg.SlowThreshold)(handler)

	return handler
}
