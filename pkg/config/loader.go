package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable read by Load.
const Prefix = "NAMER_"

// LoadEnv loads .env files into the process environment. Variables that are
// already set are never overwritten, and with several files the first one
// to define a variable wins.
//
// Without arguments the default .env in the working directory is loaded if
// it exists; a missing default file is not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Parse fills any struct from environment variables using `env` field tags,
// with prefix prepended to every variable name.
//
//	type DatabaseConfig struct {
//		Host string `env:"DB_HOST" envDefault:"localhost"`
//		Port int    `env:"DB_PORT" envDefault:"5432"`
//	}
//
//	var db DatabaseConfig
//	err := config.Parse(&db, "APP_")
func Parse[T any](v *T, prefix string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Load reads the given .env files (or the default .env) and parses NAMER_*
// variables into a Config. The result is not validated: callers apply their
// own overrides first and then call Validate once.
func Load(paths ...string) (Config, error) {
	var cfg Config
	if err := LoadEnv(paths...); err != nil {
		return cfg, err
	}
	if err := Parse(&cfg, Prefix); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MustLoad loads and validates the configuration, panicking on any failure.
func MustLoad(paths ...string) Config {
	cfg, err := Load(paths...)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}
