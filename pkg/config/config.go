package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrymomot/namer/pkg/httpserver"
	"github.com/dmitrymomot/namer/pkg/logger"
)

// Config is the complete runtime configuration of the namer service and CLI.
// Every variable is read with the NAMER_ prefix, e.g. NAMER_LOG_LEVEL.
type Config struct {
	Env         string `env:"ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"namer"`

	Log       LogConfig       `envPrefix:"LOG_"`
	Source    SourceConfig    `envPrefix:"SOURCE_"`
	S3        S3Config        `envPrefix:"S3_"`
	Generator GeneratorConfig `envPrefix:"GENERATOR_"`
	HTTP      httpserver.Config
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"` // text or json
}

// SourceConfig controls where name lists come from and how they are fetched.
type SourceConfig struct {
	// BaseURL may be http(s)://, file://, s3:// or a plain directory path.
	BaseURL        string        `env:"BASE_URL" envDefault:"https://cdn.jsdelivr.net/gh/Aptivi/NamesList@master/Processed"`
	FetchTimeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	MaxRetries     int           `env:"MAX_RETRIES" envDefault:"2"`
	UserAgent      string        `env:"USER_AGENT" envDefault:"namer/1.0"`
	FileRoot       string        `env:"FILE_ROOT"`

	// BreakerThreshold of 0 disables the circuit breaker.
	BreakerThreshold int           `env:"BREAKER_THRESHOLD" envDefault:"5"`
	BreakerTimeout   time.Duration `env:"BREAKER_TIMEOUT" envDefault:"30s"`
}

// S3Config is only used when the base URL has the s3 scheme.
type S3Config struct {
	Region         string `env:"REGION"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_ACCESS_KEY"`
	Endpoint       string `env:"ENDPOINT"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE" envDefault:"false"`
}

type GeneratorConfig struct {
	Seed               uint64 `env:"SEED"` // 0 means time-seeded
	CandidateCacheSize int    `env:"CANDIDATE_CACHE_SIZE" envDefault:"64"`
}

// Validate reports the first invalid value, wrapped with ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch logger.Format(c.Log.Format) {
	case logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Source.BaseURL == "" {
		return fmt.Errorf("%w: source base url is empty", ErrInvalidConfig)
	}
	if _, err := url.Parse(c.Source.BaseURL); err != nil {
		return fmt.Errorf("%w: source base url: %w", ErrInvalidConfig, err)
	}
	if c.Source.FetchTimeout <= 0 || c.Source.RequestTimeout <= 0 {
		return fmt.Errorf("%w: source timeouts must be positive", ErrInvalidConfig)
	}
	if c.Source.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries must be >= 0", ErrInvalidConfig)
	}
	if c.Source.BreakerThreshold < 0 {
		return fmt.Errorf("%w: breaker threshold must be >= 0", ErrInvalidConfig)
	}
	if c.Generator.CandidateCacheSize < 0 {
		return fmt.Errorf("%w: candidate cache size must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// IsProduction reports whether Env names the production environment.
func (c Config) IsProduction() bool {
	return c.Env == logger.Production
}
