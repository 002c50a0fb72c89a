package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds everything read from the environment at startup. A .env file,
// if present, is loaded by main before parsing.
type Config struct {
	Port   string `env:"PORT" envDefault:"3000"`
	Mongo  MongoConfig
	Auth   AuthConfig
	Client ClientConfig
}

type MongoConfig struct {
	URI    string `env:"MONGODB_URI,required,notEmpty"`
	DBName string `env:"DB_NAME" envDefault:"mealBridge"`
}

// AuthConfig locates the Firebase service-account credential. Exactly one of
// KeyBase64 or CredentialsFile must be set.
type AuthConfig struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	KeyBase64       string `env:"FIREBASE_SERVICE_ACCOUNT_BASE64"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

type ClientConfig struct {
	URL string `env:"CLIENT_URL"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}
