package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	// EnvDBPassword переопределяет database.password
	EnvDBPassword = "SALON_DB_PASSWORD"
	// EnvSMTPPassword переопределяет notifications.smtp_password
	EnvSMTPPassword = "SALON_SMTP_PASSWORD"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config")
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Notifications NotificationsConfig `toml:"notifications"`
	Scheduling    SchedulingConfig    `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	// MaxRetries попытки повторить сериализуемую транзакцию при конфликте
	MaxRetries int `toml:"max_retries"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotificationsConfig настройки уведомлений сотрудников
type NotificationsConfig struct {
	SMTPEnabled  bool   `toml:"smtp_enabled"`
	SMTPHost     string `toml:"smtp_host"`
	SMTPPort     int    `toml:"smtp_port"`
	SMTPUser     string `toml:"smtp_user"`
	SMTPPassword string `toml:"smtp_password"`
	From         string `toml:"from"`
	Subject      string `toml:"subject"`
}

// SchedulingConfig настройки свободного времени и отчетов
type SchedulingConfig struct {
	// SlotStepMinutes шаг, с которым перебираются возможные начала записи
	SlotStepMinutes int `toml:"slot_step_minutes"`
	// MinNoticeMinutes минимальное время от текущего момента до начала записи на сегодня
	MinNoticeMinutes int `toml:"min_notice_minutes"`
	// MaxReportRangeDays максимальная длина периода отчета, 0 - без ограничения
	MaxReportRangeDays int `toml:"max_report_range_days"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Default конфигурация по умолчанию
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
			DBName:          "salon",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MaxRetries:      3,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "salon-service",
		},
		Notifications: NotificationsConfig{
			SMTPPort: 587,
			Subject:  "Nuevo turno asignado",
		},
		Scheduling: SchedulingConfig{
			SlotStepMinutes:    domain.DefaultSlotStepMinutes,
			MaxReportRangeDays: domain.MaxReportRangeDays,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// Секреты берутся из окружения (и .env, если он есть)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах и утилитах)
func Parse(data string) (*Config, error) {
	cfg := Default()

	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvSMTPPassword); ok {
		c.Notifications.SMTPPassword = v
	}
}

// Validate проверяет, что значения конфигурации допустимы
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: database pool sizes must not be negative", ErrInvalidConfig)
	}
	if c.Database.MaxRetries < 0 {
		return fmt.Errorf("%w: database.max_retries must not be negative", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logs.level %q", ErrInvalidConfig, c.Logs.Level)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	if c.Notifications.SMTPEnabled {
		if c.Notifications.SMTPHost == "" || c.Notifications.From == "" {
			return fmt.Errorf("%w: notifications.smtp_host and notifications.from are required when smtp is enabled", ErrInvalidConfig)
		}
		if c.Notifications.SMTPPort <= 0 {
			return fmt.Errorf("%w: notifications.smtp_port %d out of range", ErrInvalidConfig, c.Notifications.SMTPPort)
		}
	}
	if c.Scheduling.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Scheduling.MinNoticeMinutes < 0 {
		return fmt.Errorf("%w: scheduling.min_notice_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Scheduling.MaxReportRangeDays < 0 {
		return fmt.Errorf("%w: scheduling.max_report_range_days must not be negative", ErrInvalidConfig)
	}
	return nil
}
