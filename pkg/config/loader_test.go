package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namer/pkg/config"
)

// unsetForTest clears keys for the duration of the test and restores them afterwards.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var fileKeys = []string{
	"NAMER_ENV",
	"NAMER_LOG_LEVEL",
	"NAMER_LOG_FORMAT",
	"NAMER_SOURCE_BASE_URL",
	"NAMER_SOURCE_MAX_RETRIES",
	"NAMER_GENERATOR_SEED",
	"NAMER_GENERATOR_CANDIDATE_CACHE_SIZE",
	"NAMER_HTTP_ADDR",
}

func TestLoad_Defaults(t *testing.T) {
	unsetForTest(t, fileKeys...)

	cfg, err := config.Load("testdata/.env.override")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "namer", cfg.ServiceName)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "https://cdn.jsdelivr.net/gh/Aptivi/NamesList@master/Processed", cfg.Source.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Source.FetchTimeout)
	assert.Equal(t, 15*time.Second, cfg.Source.RequestTimeout)
	assert.Equal(t, 2, cfg.Source.MaxRetries)
	assert.Equal(t, 5, cfg.Source.BreakerThreshold)
	assert.Equal(t, uint64(0), cfg.Generator.Seed)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())

	// from the override file
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Generator.CandidateCacheSize)
}

func TestLoad_FromFile(t *testing.T) {
	unsetForTest(t, fileKeys...)

	cfg, err := config.Load("testdata/.env.test")
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "file:///srv/names", cfg.Source.BaseURL)
	assert.Equal(t, 4, cfg.Source.MaxRetries)
	assert.Equal(t, uint64(42), cfg.Generator.Seed)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestLoad_FirstFileWins(t *testing.T) {
	unsetForTest(t, fileKeys...)

	cfg, err := config.Load("testdata/.env.test", "testdata/.env.override")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Generator.CandidateCacheSize)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	unsetForTest(t, fileKeys...)
	t.Setenv("NAMER_LOG_LEVEL", "warn")

	cfg, err := config.Load("testdata/.env.test")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("testdata/does_not_exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoad_ParseError(t *testing.T) {
	unsetForTest(t, fileKeys...)
	t.Setenv("NAMER_SOURCE_MAX_RETRIES", "many")

	_, err := config.Load("testdata/.env.override")
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"NAMER_LOG_LEVEL":                      "loud",
		"NAMER_LOG_FORMAT":                     "xml",
		"NAMER_SOURCE_MAX_RETRIES":             "-1",
		"NAMER_GENERATOR_CANDIDATE_CACHE_SIZE": "-5",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			unsetForTest(t, fileKeys...)
			t.Setenv(key, value)

			cfg, err := config.Load("testdata/.env.override")
			require.NoError(t, err, "loading does not validate")
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestLoad_OverrideBeforeValidate(t *testing.T) {
	unsetForTest(t, fileKeys...)
	t.Setenv("NAMER_LOG_LEVEL", "loud")

	cfg, err := config.Load("testdata/.env.override")
	require.NoError(t, err)
	require.Error(t, cfg.Validate())

	cfg.Log.Level = "debug"
	assert.NoError(t, cfg.Validate())
}

func TestMustLoad(t *testing.T) {
	unsetForTest(t, fileKeys...)

	assert.NotPanics(t, func() { config.MustLoad("testdata/.env.test") })
	assert.Panics(t, func() { config.MustLoad("testdata/does_not_exist.env") })

	t.Setenv("NAMER_LOG_LEVEL", "loud")
	assert.Panics(t, func() { config.MustLoad("testdata/.env.test") })
}

func TestParse(t *testing.T) {
	type custom struct {
		Name  string   `env:"NAME" envDefault:"anon"`
		Tags  []string `env:"TAGS" envSeparator:","`
		Count int      `env:"COUNT,required"`
	}

	t.Setenv("APP_TAGS", "a,b")
	t.Setenv("APP_COUNT", "3")

	var c custom
	require.NoError(t, config.Parse(&c, "APP_"))
	assert.Equal(t, custom{Name: "anon", Tags: []string{"a", "b"}, Count: 3}, c)

	assert.ErrorIs(t, config.Parse[custom](nil, "APP_"), config.ErrNilPointer)

	var missing custom
	assert.ErrorIs(t, config.Parse(&missing, "OTHER_"), config.ErrParsingConfig)
}
