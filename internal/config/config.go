package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-DeskBookingService/pkg/psqlbuilder"
)

var (
	ErrReadConfig  = errors.New("config: failed to read file")
	ErrParseConfig = errors.New("config: failed to parse file")
	ErrInvalidEnv  = errors.New("config: invalid environment value")
)

// Переменные окружения, перекрывающие файл
const (
	EnvPostgresURL    = "POSTGRES_URL"
	EnvDatabaseDriver = "DATABASE_DRIVER"
	EnvHTTPPort       = "HTTP_PORT"
	EnvRedisAddr      = "REDIS_ADDR"
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Driver postgres или sqlite
	Driver string `toml:"driver"`
	// URL полная строка подключения, имеет приоритет над host/port
	URL             string `toml:"url"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	// TTL время жизни закэшированной недели, секунды
	TTL int `toml:"ttl"`
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

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load читает toml-файл, подтягивает .env и применяет переменные окружения.
// Отсутствие .env не ошибка.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg := defaults()
	if _, err := toml.Decode(os.ExpandEnv(string(data)), cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParseConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        3000,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          string(psqlbuilder.Postgres),
			SSLMode:         "disable",
			Path:            "data/desks.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{TTL: 30},
		Logs:  LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "desk_booking",
		},
		CORS: CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: RateLimitConfig{
			RPS:   20,
			Burst: 40,
		},
	}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvPostgresURL); ok {
		c.Database.URL = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseDriver); ok && v != "" {
		c.Database.Driver = v
	}
	if v, ok := os.LookupEnv(EnvHTTPPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	if v, ok := os.LookupEnv(EnvRedisAddr); ok {
		c.Redis.Address = v
	}
	return nil
}

// Dialect диалект SQL для выбранного драйвера
func (d DatabaseConfig) Dialect() (psqlbuilder.Dialect, error) {
	return psqlbuilder.ParseDialect(d.Driver)
}

// DSN строка подключения для sql.Open
func (d DatabaseConfig) DSN() string {
	if dialect, err := d.Dialect(); err == nil && dialect == psqlbuilder.SQLite {
		return d.Path
	}
	if d.URL != "" {
		return d.URL
	}
	if d.Host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// IsDemo true, когда postgres не настроен: сервис работает в памяти с демо-данными
func (c *Config) IsDemo() bool {
	if dialect, err := c.Database.Dialect(); err != nil || dialect != psqlbuilder.Postgres {
		return false
	}
	return isPlaceholderDSN(c.Database.DSN())
}

func isPlaceholderDSN(dsn string) bool {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return true
	}
	return strings.Contains(dsn, "user:password@host") || strings.Contains(dsn, "/database?")
}
