package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds settings not tied to a single upstream provider.
// Provider credentials (Stripe, OpenAI, R2, Google Maps) are read by
// their own clients from the environment.
type Config struct {
	Env  string `env:"APP_ENV" env-default:"development"`
	Port string `env:"PORT" env-default:"8080"`

	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`

	Redis RedisConfig

	Checkout CheckoutConfig

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type CheckoutConfig struct {
	SuccessURL string `env:"CHECKOUT_SUCCESS_URL" env-default:"http://localhost:3000/checkout/success"`
	CancelURL  string `env:"CHECKOUT_CANCEL_URL" env-default:"http://localhost:3000/checkout/cancel"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &cfg, nil
}
