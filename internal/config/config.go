// AngelaMos | 2026
// config.go

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App        AppConfig        `koanf:"app"`
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Redis      RedisConfig      `koanf:"redis"`
	JWT        JWTConfig        `koanf:"jwt"`
	RateLimit  RateLimitConfig  `koanf:"rate_limit"`
	CORS       CORSConfig       `koanf:"cors"`
	Log        LogConfig        `koanf:"log"`
	Otel       OtelConfig       `koanf:"otel"`
	Storage    StorageConfig    `koanf:"storage"`
	Mail       MailConfig       `koanf:"mail"`
	Frontend   FrontendConfig   `koanf:"frontend"`
	Revocation RevocationConfig `koanf:"revocation"`
	Metrics    MetricsConfig    `koanf:"metrics"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxUploadBytes  int64         `koanf:"max_upload_bytes"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	ResetOnBoot     bool          `koanf:"reset_on_boot"`
}

type RedisConfig struct {
	URL             string        `koanf:"url"`
	PoolSize        int           `koanf:"pool_size"`
	MinIdleConns    int           `koanf:"min_idle_conns"`
	PoolTimeout     time.Duration `koanf:"pool_timeout"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

type JWTConfig struct {
	Algorithm         string        `koanf:"algorithm"`
	Secret            string        `koanf:"secret"`
	PrivateKeyPath    string        `koanf:"private_key_path"`
	PublicKeyPath     string        `koanf:"public_key_path"`
	AccessTokenExpire time.Duration `koanf:"access_token_expire"`
	Issuer            string        `koanf:"issuer"`
	Audience          string        `koanf:"audience"`
}

type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Burst    int           `koanf:"burst"`
}

type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

type StorageConfig struct {
	Bucket          string `koanf:"bucket"`
	ProjectID       string `koanf:"project_id"`
	CredentialsFile string `koanf:"credentials_file"`
	PublicBaseURL   string `koanf:"public_base_url"`
}

type MailConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	From     string `koanf:"from"`
}

type FrontendConfig struct {
	BaseURL string `koanf:"base_url"`
}

type RevocationConfig struct {
	SweepInterval time.Duration `koanf:"sweep_interval"`
	Retention     time.Duration `koanf:"retention"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

var (
	cfg  *Config
	once sync.Once
)

func Load(configPath string) (*Config, error) {
	var loadErr error

	once.Do(func() {
		cfg, loadErr = load(configPath)
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return cfg, nil
}

func load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		err := k.Load(file.Provider(configPath), yaml.Parser())
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	c := &Config{}
	if err := k.Unmarshal("", c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call Load() first")
	}
	return cfg
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "TierHub API",
		"app.version":     "1.0.0",
		"app.environment": "production",

		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",
		"server.max_upload_bytes": 10 << 20,

		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"database.reset_on_boot":      false,

		"redis.pool_size":          10,
		"redis.min_idle_conns":     5,
		"redis.pool_timeout":       "30s",
		"redis.conn_max_idle_time": "5m",

		"jwt.algorithm":           "HS256",
		"jwt.access_token_expire": "168h",
		"jwt.issuer":              "tierhub",
		"jwt.audience":            "tierhub-api",

		"rate_limit.requests": 100,
		"rate_limit.window":   "1m",
		"rate_limit.burst":    20,

		"cors.allowed_origins": []string{"http://localhost:5173"},
		"cors.allowed_methods": []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
		},
		"cors.allowed_headers": []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
		},
		"cors.allow_credentials": true,
		"cors.max_age":           300,

		"log.level":  "info",
		"log.format": "json",

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "tierhub-api",

		"mail.port": 587,

		"frontend.base_url": "http://localhost:5173",

		"revocation.sweep_interval": "1h",
		"revocation.retention":      "168h",

		"metrics.enabled": true,
		"metrics.path":    "/metrics",
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"DATABASE_URL":                   "database.url",
	"DATABASE_RESET_ON_BOOT":         "database.reset_on_boot",
	"REDIS_URL":                      "redis.url",
	"ENVIRONMENT":                    "app.environment",
	"HOST":                           "server.host",
	"PORT":                           "server.port",
	"MAX_UPLOAD_BYTES":               "server.max_upload_bytes",
	"LOG_LEVEL":                      "log.level",
	"LOG_FORMAT":                     "log.format",
	"JWT_ALGORITHM":                  "jwt.algorithm",
	"JWT_SECRET":                     "jwt.secret",
	"JWT_PRIVATE_KEY_PATH":           "jwt.private_key_path",
	"JWT_PUBLIC_KEY_PATH":            "jwt.public_key_path",
	"JWT_ACCESS_TOKEN_EXPIRE":        "jwt.access_token_expire",
	"JWT_ISSUER":                     "jwt.issuer",
	"JWT_AUDIENCE":                   "jwt.audience",
	"RATE_LIMIT_REQUESTS":            "rate_limit.requests",
	"RATE_LIMIT_WINDOW":              "rate_limit.window",
	"RATE_LIMIT_BURST":               "rate_limit.burst",
	"OTEL_ENDPOINT":                  "otel.endpoint",
	"OTEL_EXPORTER_OTLP_ENDPOINT":    "otel.endpoint",
	"OTEL_SERVICE_NAME":              "otel.service_name",
	"OTEL_ENABLED":                   "otel.enabled",
	"OTEL_INSECURE":                  "otel.insecure",
	"OTEL_SAMPLE_RATE":               "otel.sample_rate",
	"STORAGE_BUCKET":                 "storage.bucket",
	"STORAGE_PROJECT_ID":             "storage.project_id",
	"GOOGLE_APPLICATION_CREDENTIALS": "storage.credentials_file",
	"STORAGE_PUBLIC_BASE_URL":        "storage.public_base_url",
	"MAIL_HOST":                      "mail.host",
	"MAIL_PORT":                      "mail.port",
	"MAIL_USERNAME":                  "mail.username",
	"MAIL_PASSWORD":                  "mail.password",
	"MAIL_FROM":                      "mail.from",
	"FRONTEND_URL":                   "frontend.base_url",
	"REVOCATION_SWEEP_INTERVAL":      "revocation.sweep_interval",
	"REVOCATION_RETENTION":           "revocation.retention",
	"METRICS_ENABLED":                "metrics.enabled",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	switch strings.ToUpper(c.JWT.Algorithm) {
	case "HS256", "HS384", "HS512":
		if len(c.JWT.Secret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 bytes")
		}
	case "ES256":
		if c.JWT.PrivateKeyPath == "" {
			return fmt.Errorf("JWT_PRIVATE_KEY_PATH is required for ES256")
		}
	default:
		return fmt.Errorf("unsupported JWT_ALGORITHM %q", c.JWT.Algorithm)
	}

	if c.CORS.AllowCredentials {
		for _, origin := range c.CORS.AllowedOrigins {
			if origin == "*" {
				return fmt.Errorf(
					"CORS wildcard '*' cannot be used with AllowCredentials",
				)
			}
		}
	}

	if c.App.Environment == "production" {
		if c.Otel.Enabled && c.Otel.Insecure {
			return fmt.Errorf("OTEL_INSECURE must be false in production")
		}
		if c.Database.ResetOnBoot {
			return fmt.Errorf("database.reset_on_boot is not allowed in production")
		}
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	if c.Revocation.SweepInterval <= 0 {
		return fmt.Errorf("revocation.sweep_interval must be positive")
	}

	if c.Revocation.Retention <= 0 {
		return fmt.Errorf("revocation.retention must be positive")
	}

	// a revocation swept before the tokens it covers expire would revive them
	if c.Revocation.Retention < c.JWT.AccessTokenExpire {
		return fmt.Errorf(
			"revocation.retention must be at least jwt.access_token_expire",
		)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// ShouldResetSchema reports whether the boot sequence drops and reseeds the schema.
func (c *Config) ShouldResetSchema() bool {
	return c.IsDevelopment() || c.Database.ResetOnBoot
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
