package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "AMAZONE"

// Config is the full service configuration, parsed from AMAZONE_* env vars.
type Config struct {
	App      AppConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Razorpay RazorpayConfig
	Email    EmailConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	// envconfig's required check passes a present-but-empty variable.
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("AMAZONE_JWT_SECRET must be set")
	}
	return &cfg, nil
}

type AppConfig struct {
	Port     string `envconfig:"AMAZONE_PORT" default:"8000"`
	LogLevel string `envconfig:"AMAZONE_LOG_LEVEL" default:"info"`
}

type MongoConfig struct {
	URI      string `envconfig:"AMAZONE_MONGO_URI" default:"mongodb://localhost:27017"`
	Database string `envconfig:"AMAZONE_MONGO_DB" default:"amazone"`
}

type RedisConfig struct {
	Addr     string `envconfig:"AMAZONE_REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"AMAZONE_REDIS_PASSWORD"`
	DB       int    `envconfig:"AMAZONE_REDIS_DB" default:"0"`
}

type JWTConfig struct {
	Secret string `envconfig:"AMAZONE_JWT_SECRET" required:"true"`
}

type RazorpayConfig struct {
	KeyID     string `envconfig:"AMAZONE_RAZORPAY_KEY_ID"`
	KeySecret string `envconfig:"AMAZONE_RAZORPAY_KEY_SECRET"`
}

type EmailConfig struct {
	SendgridAPIKey string `envconfig:"AMAZONE_SENDGRID_API_KEY"`
	Sender         string `envconfig:"AMAZONE_EMAIL_SENDER" default:"orders@amazone.example"`
	SenderName     string `envconfig:"AMAZONE_EMAIL_SENDER_NAME" default:"Amazone Store"`
}
