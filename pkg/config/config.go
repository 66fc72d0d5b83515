package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "shopstream"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "SHOPSTREAM_APP_ENV"
	EnvPort     = "SHOPSTREAM_APP_PORT"
	EnvRedisURL = "SHOPSTREAM_REDIS_URL"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Auth    AuthConfig
	Payment PaymentConfig
	Session SessionConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPSTREAM_APP_ENV" default:"development"`
	Port         string `envconfig:"SHOPSTREAM_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPSTREAM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPSTREAM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPSTREAM_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SHOPSTREAM_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPSTREAM_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPSTREAM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPSTREAM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPSTREAM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPSTREAM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPSTREAM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPSTREAM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	BaseURL string        `envconfig:"SHOPSTREAM_CATALOG_BASE_URL" default:"https://fakestoreapi.com"`
	Timeout time.Duration `envconfig:"SHOPSTREAM_CATALOG_TIMEOUT" default:"10s"`
}

type AuthConfig struct {
	LoginConfirmDelay  time.Duration `envconfig:"SHOPSTREAM_AUTH_LOGIN_CONFIRM_DELAY" default:"1s"`
	SignupConfirmDelay time.Duration `envconfig:"SHOPSTREAM_AUTH_SIGNUP_CONFIRM_DELAY" default:"1500ms"`
}

type PaymentConfig struct {
	MerchantID   string `envconfig:"SHOPSTREAM_PAYMENT_MERCHANT_ID" default:"shopstream@bank"`
	MerchantName string `envconfig:"SHOPSTREAM_PAYMENT_MERCHANT_NAME" default:"Shopstream"`
	Currency     string `envconfig:"SHOPSTREAM_PAYMENT_CURRENCY" default:"INR"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"SHOPSTREAM_SESSION_COOKIE" default:"ss_session"`
	RecordTTL  time.Duration `envconfig:"SHOPSTREAM_SESSION_RECORD_TTL" default:"720h"`
}
