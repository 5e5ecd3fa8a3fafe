package config

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env         string `env:"APP_ENV" envDefault:"dev"`
	Host        string `env:"HOST" envDefault:"0.0.0.0"`
	Port        int    `env:"PORT" envDefault:"5005"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"staffportal"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MaxBodyBytes       int64    `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	SeedAdmin SeedAdmin `envPrefix:"SEED_ADMIN_"`
}

// SeedAdmin is the record present before any client request.
type SeedAdmin struct {
	Email     string `env:"EMAIL" envDefault:"admin@portal.com"`
	Password  string `env:"PASSWORD" envDefault:"adminpassword"`
	FirstName string `env:"FIRST_NAME" envDefault:"Admin"`
	LastName  string `env:"LAST_NAME" envDefault:"User"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found; using environment variables")
	}

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return Config{}, aggErr.Errors[0]
		}
		return Config{}, err
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, errors.New("PORT must be between 0 and 65535")
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
