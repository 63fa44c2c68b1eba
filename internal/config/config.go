// Package config загружает конфигурацию сервиса: .env, TOML файл и переменные окружения.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, например CALENDAR_DATABASE_HOST
const EnvPrefix = "CALENDAR"

var (
	// ErrLoad ошибка чтения конфигурации
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid конфигурация не прошла проверку
	ErrInvalid = errors.New("config: invalid configuration")
)

type Config struct {
	Server    ServerConfig    `toml:"server" envconfig:"SERVER"`
	Database  DatabaseConfig  `toml:"database" envconfig:"DATABASE"`
	Logs      LogsConfig      `toml:"logs" envconfig:"LOGS"`
	Metrics   MetricsConfig   `toml:"metrics" envconfig:"METRICS"`
	RentalAPI RentalAPIConfig `toml:"rental_api" envconfig:"RENTAL_API"`
	Calendar  CalendarConfig  `toml:"calendar" envconfig:"CALENDAR"`
	RateLimit RateLimitConfig `toml:"rate_limit" envconfig:"RATE_LIMIT"`
	CORS      CORSConfig      `toml:"cors" envconfig:"CORS"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"HOST"`
	Port            int    `toml:"port" envconfig:"PORT"`
	User            string `toml:"user" envconfig:"USER"`
	Password        string `toml:"password" envconfig:"PASSWORD"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"` // секунды
	MigrateOnStart  bool   `toml:"migrate_on_start" envconfig:"MIGRATE_ON_START"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level" envconfig:"LEVEL"`
	File  string `toml:"file" envconfig:"FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"ENABLED"`
	Path        string `toml:"path" envconfig:"PATH"`
	ServiceName string `toml:"service_name" envconfig:"SERVICE_NAME"`
}

// RentalAPIConfig источник списка бронирований и проверки доступности.
// Может указывать на этот же сервис.
type RentalAPIConfig struct {
	URL     string `toml:"url" envconfig:"URL"`
	Timeout int    `toml:"timeout" envconfig:"TIMEOUT"` // секунды
}

type CalendarConfig struct {
	// Location IANA зона, в которой считается "сегодня"
	Location string `toml:"location" envconfig:"LOCATION"`
}

// TimeLocation возвращает зону календаря, Local для пустого значения
func (c CalendarConfig) TimeLocation() (*time.Location, error) {
	if c.Location == "" || c.Location == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Location)
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled" envconfig:"ENABLED"`
	RequestsPerSecond float64 `toml:"requests_per_second" envconfig:"RPS"`
	Burst             int     `toml:"burst" envconfig:"BURST"`
	// TrustProxy брать адрес клиента из X-Forwarded-For; включать только за своим прокси
	TrustProxy        bool    `toml:"trust_proxy" envconfig:"TRUST_PROXY"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
}

// Load читает .env (если есть), затем TOML файл path, затем переменные окружения
// с префиксом CALENDAR. Отсутствующий файл не ошибка: работают значения по умолчанию.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrLoad, err)
	}

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoad, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "rental_calendar",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MigrateOnStart:  true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "rental-calendar",
		},
		RentalAPI: RentalAPIConfig{
			URL:     "http://localhost:8080/api/v1",
			Timeout: 5,
		},
		Calendar: CalendarConfig{
			Location: "Local",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 10,
			Burst:             30,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Validate проверяет значения после слияния всех источников
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalid, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalid)
	}
	if c.RentalAPI.URL == "" {
		return fmt.Errorf("%w: rental_api.url is required", ErrInvalid)
	}
	if c.RentalAPI.Timeout <= 0 {
		return fmt.Errorf("%w: rental_api.timeout=%d", ErrInvalid, c.RentalAPI.Timeout)
	}
	if _, err := c.Calendar.TimeLocation(); err != nil {
		return fmt.Errorf("%w: calendar.location=%q: %v", ErrInvalid, c.Calendar.Location, err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalid)
	}
	return nil
}
