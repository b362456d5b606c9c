package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	Redis   RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PAYLINK_APP_ENV" default:"dev"`
	Port         string `envconfig:"PAYLINK_APP_PORT" default:"7465"`
	LogLevel     string `envconfig:"PAYLINK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PAYLINK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the core at the PayLink REST backend.
type APIConfig struct {
	BaseURL string        `envconfig:"PAYLINK_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"PAYLINK_API_TIMEOUT" default:"15s"`
}

// Storage drivers for the durable device store.
const (
	StorageDriverSQLite = "sqlite"
	StorageDriverRedis  = "redis"
	StorageDriverMemory = "memory"
)

type StorageConfig struct {
	Driver     string `envconfig:"PAYLINK_STORAGE_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"PAYLINK_STORAGE_SQLITE_PATH" default:"paylink.db"`
}

func (s StorageConfig) validate() error {
	switch s.Driver {
	case StorageDriverSQLite, StorageDriverRedis, StorageDriverMemory:
		return nil
	}
	return fmt.Errorf("unknown storage driver %q", s.Driver)
}

type RedisConfig struct {
	URL          string        `envconfig:"PAYLINK_REDIS_URL"`
	Address      string        `envconfig:"PAYLINK_REDIS_ADDR"`
	Password     string        `envconfig:"PAYLINK_REDIS_PASSWORD"`
	DB           int           `envconfig:"PAYLINK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PAYLINK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PAYLINK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PAYLINK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PAYLINK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PAYLINK_REDIS_WRITE_TIMEOUT" default:"5s"`
}
