package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Cart    CartConfig
	Email   EmailConfig
	Stripe  StripeConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"OPHELIA_APP_ENV" required:"true"`
	Port         string `envconfig:"OPHELIA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"OPHELIA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"OPHELIA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// RedisConfig is optional: when no URL or address is set the API keeps carts
// in process memory only.
type RedisConfig struct {
	URL          string        `envconfig:"OPHELIA_REDIS_URL"`
	Address      string        `envconfig:"OPHELIA_REDIS_ADDR"`
	Password     string        `envconfig:"OPHELIA_REDIS_PASSWORD"`
	DB           int           `envconfig:"OPHELIA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"OPHELIA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"OPHELIA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"OPHELIA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"OPHELIA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"OPHELIA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether a Redis endpoint was supplied.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type CatalogConfig struct {
	ContentDir string `envconfig:"OPHELIA_CATALOG_CONTENT_DIR" default:"content/varieties"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"OPHELIA_CART_TTL" default:"720h"`
}

// EmailConfig selects the pre-order notification provider. All three values
// must be present for the Resend adapter to be wired; otherwise submissions
// fall back to a diagnostic log.
type EmailConfig struct {
	ResendAPIKey string        `envconfig:"OPHELIA_RESEND_API_KEY"`
	OrderTo      string        `envconfig:"OPHELIA_ORDER_EMAIL_TO"`
	OrderFrom    string        `envconfig:"OPHELIA_ORDER_EMAIL_FROM"`
	SendTimeout  time.Duration `envconfig:"OPHELIA_EMAIL_SEND_TIMEOUT" default:"10s"`
}

// Configured reports whether the Resend adapter has everything it needs.
func (e EmailConfig) Configured() bool {
	return e.ResendAPIKey != "" && e.OrderTo != "" && e.OrderFrom != ""
}

// StripeConfig backs the unimplemented checkout-session stub.
type StripeConfig struct {
	SecretKey     string `envconfig:"OPHELIA_STRIPE_SECRET_KEY"`
	WebhookSecret string `envconfig:"OPHELIA_STRIPE_WEBHOOK_SECRET"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"OPHELIA_CORS_ALLOWED_ORIGINS" default:"http://localhost:4321"`
}
