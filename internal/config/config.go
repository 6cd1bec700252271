package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	AuthModeHeader = "header"
	AuthModeJWT    = "jwt"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Auth         AuthConfig         `toml:"auth"`
	Booking      BookingConfig      `toml:"booking"`
	Availability AvailabilityConfig `toml:"availability"`
	Listing      ListingConfig      `toml:"listing"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig источник идентификатора пользователя
type AuthConfig struct {
	Mode       string `toml:"mode"` // header | jwt
	HeaderName string `toml:"header_name"`
	JWTSecret  string `toml:"jwt_secret"`
}

// BookingConfig настройки создания бронирований
type BookingConfig struct {
	// ReserveNights при создании бронирования помечать ночи [checkIn, checkOut) недоступными
	ReserveNights bool `toml:"reserve_nights"`
}

// AvailabilityConfig настройки календаря доступности
type AvailabilityConfig struct {
	// StrictCalendarDates требовать реальную календарную дату, а не только форму YYYY-MM-DD
	StrictCalendarDates *bool `toml:"strict_calendar_dates"`
	DefaultLimit        int   `toml:"default_limit"`
	MaxLimit            int   `toml:"max_limit"`
}

// Strict возвращает значение переключателя, по умолчанию true
func (a AvailabilityConfig) Strict() bool {
	return a.StrictCalendarDates == nil || *a.StrictCalendarDates
}

// ListingConfig пагинация списков бронирований, объектов и транзакций
type ListingConfig struct {
	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

// Load читает конфигурацию из TOML файла.
// Переменные из .env (если файл есть) и окружения перекрывают значения из файла
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("DB_HOST")); v != "" {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Logs.Level = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "rental-service"
	}
	if c.Auth.Mode == "" {
		c.Auth.Mode = AuthModeHeader
	}
	if c.Auth.HeaderName == "" {
		c.Auth.HeaderName = "X-User-ID"
	}
	if c.Availability.DefaultLimit == 0 {
		c.Availability.DefaultLimit = 90
	}
	if c.Availability.MaxLimit == 0 {
		c.Availability.MaxLimit = 100
	}
	if c.Listing.DefaultLimit == 0 {
		c.Listing.DefaultLimit = 50
	}
	if c.Listing.MaxLimit == 0 {
		c.Listing.MaxLimit = 100
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database.dbname is required")
	}
	switch c.Auth.Mode {
	case AuthModeHeader:
	case AuthModeJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("auth.jwt_secret is required when auth.mode = \"jwt\"")
		}
	default:
		return fmt.Errorf("auth.mode must be %q or %q, got %q", AuthModeHeader, AuthModeJWT, c.Auth.Mode)
	}
	if c.Availability.DefaultLimit < 1 || c.Availability.DefaultLimit > c.Availability.MaxLimit {
		return fmt.Errorf("availability.default_limit must be in 1..%d", c.Availability.MaxLimit)
	}
	if c.Listing.DefaultLimit < 1 || c.Listing.DefaultLimit > c.Listing.MaxLimit {
		return fmt.Errorf("listing.default_limit must be in 1..%d", c.Listing.MaxLimit)
	}
	return nil
}
