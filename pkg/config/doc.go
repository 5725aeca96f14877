// Package config loads the namer configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are loaded into the process environment first, then
// every NAMER_* variable is parsed into a Config. Load does not validate;
// callers apply command line overrides and then call Config.Validate once.
//
// # Usage
//
//	cfg, err := config.Load() // reads ./.env if present
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Log.Level = *levelFlag
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg = config.MustLoad("deploy/.env") // loads and validates, panics on failure
//
// Variables already present in the environment take precedence over values
// from files. The generic Parse helper fills any struct with env tags and can
// be used for settings that live outside Config.
//
// # Variables
//
//	NAMER_ENV                          development | staging | production
//	NAMER_SERVICE_NAME                 default namer
//	NAMER_LOG_LEVEL                    debug | info | warn | error
//	NAMER_LOG_FORMAT                   text | json
//	NAMER_SOURCE_BASE_URL              http(s)://, file://, s3:// or a directory
//	NAMER_SOURCE_FETCH_TIMEOUT         budget for one list population
//	NAMER_SOURCE_REQUEST_TIMEOUT       budget for one HTTP attempt
//	NAMER_SOURCE_MAX_RETRIES           HTTP retries after the first attempt
//	NAMER_SOURCE_USER_AGENT
//	NAMER_SOURCE_FILE_ROOT             root for relative file paths
//	NAMER_SOURCE_BREAKER_THRESHOLD     0 disables the circuit breaker
//	NAMER_SOURCE_BREAKER_TIMEOUT
//	NAMER_S3_REGION, NAMER_S3_ACCESS_KEY_ID, NAMER_S3_SECRET_ACCESS_KEY,
//	NAMER_S3_ENDPOINT, NAMER_S3_FORCE_PATH_STYLE
//	NAMER_GENERATOR_SEED               0 means time-seeded
//	NAMER_GENERATOR_CANDIDATE_CACHE_SIZE
//	NAMER_HTTP_ADDR, NAMER_HTTP_READ_TIMEOUT, NAMER_HTTP_WRITE_TIMEOUT,
//	NAMER_HTTP_IDLE_TIMEOUT, NAMER_HTTP_SHUTDOWN_TIMEOUT
//
// # Error Handling
//
// Errors can be compared with `errors.Is`:
//
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrParsingConfig`  – env vars could not be parsed into the struct.
//   - `ErrInvalidConfig`  – a parsed value failed validation.
//   - `ErrNilPointer`     – nil pointer passed to Parse.
package config
