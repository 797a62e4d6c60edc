// Package config loads service configuration from config.toml, .env and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DevelopmentJWTSecret используется, когда JWT_SECRET_KEY не задан
const DevelopmentJWTSecret = "your-secret-key-change-in-production"

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	CORS     CORSConfig     `toml:"cors"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Seed     SeedConfig     `toml:"seed"`
	Upload   UploadConfig   `toml:"upload"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	// SlowRequestMs порог, после которого запрос логируется как warn
	SlowRequestMs int `toml:"slow_request_ms"`
}

type DatabaseConfig struct {
	// URL строка подключения (DATABASE_URL); если задана, Host/Port/User/Password игнорируются
	URL             string `toml:"url"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

type CORSConfig struct {
	Origins []string `toml:"origins"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type SeedConfig struct {
	Enabled       bool   `toml:"enabled"`
	AdminUsername string `toml:"admin_username"`
	AdminPassword string `toml:"admin_password"`
}

type UploadConfig struct {
	// MaxBytes ограничение размера файла; 0 без ограничения
	MaxBytes int64 `toml:"max_bytes"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8001,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			SlowRequestMs:   500,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "beauty_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Auth: AuthConfig{
			TokenTTLHours: 24,
		},
		CORS: CORSConfig{
			Origins: []string{"*"},
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "beauty-booking",
			Path:        "/metrics",
		},
		Seed: SeedConfig{
			Enabled:       true,
			AdminUsername: "admin",
			AdminPassword: "admin123",
		},
	}
}

// Load читает config.toml (если файл есть), затем .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: stat %s: %v", ErrInvalidConfig, path, err)
		}
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookupEnv("DATABASE_URL"); ok {
		c.Database.URL = v
	}
	if v, ok := lookupEnv("DB_NAME"); ok {
		c.Database.DBName = v
	}
	if v, ok := lookupEnv("JWT_SECRET_KEY"); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := lookupEnv("CORS_ORIGINS"); ok {
		c.CORS.Origins = splitOrigins(v)
	}
	if v, ok := lookupEnv("HTTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.Logs.Level = v
	}
	if v, ok := lookupEnv("LOG_FILE"); ok {
		c.Logs.File = v
	}
	if v, ok := lookupEnv("METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: METRICS_ENABLED=%q is not a boolean", ErrInvalidConfig, v)
		}
		c.Metrics.Enabled = enabled
	}
	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.MaxOpenConns <= 0 || c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("%w: connection pool sizes must be positive", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("%w: token_ttl_hours must be positive", ErrInvalidConfig)
	}
	if c.Upload.MaxBytes < 0 {
		return fmt.Errorf("%w: upload max_bytes must not be negative", ErrInvalidConfig)
	}
	if c.Database.URL == "" && c.Database.Host == "" {
		return fmt.Errorf("%w: database url or host is required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		c.Auth.JWTSecret = DevelopmentJWTSecret
	}
	if len(c.CORS.Origins) == 0 {
		c.CORS.Origins = []string{"*"}
	}
	return nil
}

// UsesDevelopmentSecret сообщает, что токены подписываются ключом по умолчанию
func (a AuthConfig) UsesDevelopmentSecret() bool {
	return a.JWTSecret == DevelopmentJWTSecret
}

// DSN возвращает строку подключения с примененным именем базы
func (d DatabaseConfig) DSN() string {
	if d.URL == "" {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			quoteDSNValue(d.Host), d.Port, quoteDSNValue(d.User), quoteDSNValue(d.Password),
			quoteDSNValue(d.DBName), quoteDSNValue(d.SSLMode))
	}

	if d.DBName == "" {
		return d.URL
	}

	u, err := url.Parse(d.URL)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		// key=value формат: последний dbname побеждает
		return d.URL + " dbname=" + quoteDSNValue(d.DBName)
	}
	u.Path = "/" + d.DBName
	return u.String()
}

// quoteDSNValue экранирует значение для key=value формата lib/pq
func quoteDSNValue(v string) string {
	v = strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
	return "'" + v + "'"
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
