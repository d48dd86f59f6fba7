package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port             string `env:"PORT,              default=8080"`
	Env              string `env:"ENV,               default=development"`
	JWTSecret        string `env:"JWT_SECRET"`
	EncryptionSecret string `env:"ENCRYPTION_SECRET"`
	LogLevel         string `env:"LOG_LEVEL,         default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Cashfree CashfreeConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/freelancedesk?sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CashfreeConfig struct {
	AppID     string `env:"CASHFREE_APP_ID"`
	SecretKey string `env:"CASHFREE_SECRET_KEY"`
	BaseURL   string `env:"CASHFREE_BASE_URL, default=https://sandbox.cashfree.com/pg"`
	ReturnURL string `env:"CASHFREE_RETURN_URL"`
	NotifyURL string `env:"CASHFREE_NOTIFY_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
