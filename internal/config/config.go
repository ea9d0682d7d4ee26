package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultPath путь к конфигу, если не задан CONFIG_PATH
const DefaultPath = "config.toml"

// Config конфигурация сервисов (BFF и booking store читают нужные им секции)
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Database     DatabaseConfig     `toml:"database"`
	BookingStore BookingStoreConfig `toml:"booking_store"`
	Redis        RedisConfig        `toml:"redis"`
	Session      SessionConfig      `toml:"session"`
	Auth         AuthConfig         `toml:"auth"`
	CORS         CORSConfig         `toml:"cors"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	// TrustProxyHeaders брать адрес клиента из X-Forwarded-For / X-Real-IP (сервис за reverse proxy)
	TrustProxyHeaders bool `toml:"trust_proxy_headers"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки PostgreSQL (только booking store)
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
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BookingStoreConfig адрес внешнего хранилища бронирований (только BFF)
type BookingStoreConfig struct {
	URL         string `toml:"url"`
	Timeout     int    `toml:"timeout"`      // секунды
	ReadRetries int    `toml:"read_retries"` // повторы только для GET, запись не повторяется
}

// RedisConfig хранилище клиентских сессий. Пустой Address - сессии только в памяти.
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

// SessionConfig настройки клиентских сессий
type SessionConfig struct {
	TTL int `toml:"ttl"` // секунды
}

// AuthConfig настройки идентификации пользователя
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TrustUserHeader bool   `toml:"trust_user_header"` // принимать X-User-ID без токена (локальная разработка)
}

// CORSConfig разрешенные источники браузера
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// RateLimitConfig ограничение частоты запросов на клиента (uid или адрес)
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// PathFromEnv возвращает путь к конфигу из CONFIG_PATH или DefaultPath
func PathFromEnv() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load читает TOML конфиг, подставляя переменные окружения (${VAR}) и .env, если он есть
func Load(path string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(string(data))
}

// Parse разбирает содержимое конфига, применяет значения по умолчанию и валидирует
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(os.ExpandEnv(data), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
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
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "parking"
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

	if c.BookingStore.Timeout == 0 {
		c.BookingStore.Timeout = 5
	}

	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}

	if c.Session.TTL == 0 {
		c.Session.TTL = 86400
	}

	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
}

// Validate проверяет значения, не зависящие от конкретного сервиса
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.BookingStore.ReadRetries < 0 {
		return errors.New("booking_store.read_retries must not be negative")
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate_limit values must not be negative")
	}
	return nil
}

// ValidateParking проверяет секции, обязательные для BFF
func (c *Config) ValidateParking() error {
	if c.BookingStore.URL == "" {
		return errors.New("booking_store.url is required")
	}
	if c.Auth.JWTSecret == "" && !c.Auth.TrustUserHeader {
		return errors.New("auth.jwt_secret is required unless auth.trust_user_header is enabled")
	}
	return nil
}

// ValidateBookingStore проверяет секции, обязательные для booking store
func (c *Config) ValidateBookingStore() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("database.host and database.dbname are required")
	}
	return nil
}

// StoreTimeout таймаут запросов к booking store
func (c *Config) StoreTimeout() time.Duration {
	return time.Duration(c.BookingStore.Timeout) * time.Second
}

// SessionTTL время жизни клиентской сессии
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTL) * time.Second
}
