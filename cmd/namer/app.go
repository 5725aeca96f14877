package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/namer/pkg/config"
	"github.com/dmitrymomot/namer/pkg/logger"
	"github.com/dmitrymomot/namer/pkg/namer"
	"github.com/dmitrymomot/namer/pkg/namerapi"
	"github.com/dmitrymomot/namer/pkg/namesource"
)

// app holds the wired components shared by all commands.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	composer *namer.Composer
}

func newApp(ctx context.Context, cfg config.Config, logOut io.Writer) (*app, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.Log.Format)),
		logger.WithOutput(logOut),
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(namerapi.RequestIDExtractor()),
	)

	src, err := newSource(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	reg := namer.NewRegistry(src,
		namer.WithBaseURL(cfg.Source.BaseURL),
		namer.WithFetchTimeout(cfg.Source.FetchTimeout),
		namer.WithRegistryLogger(log.With(logger.Component("registry"))),
	)

	selector := namer.NewSelector()
	if cfg.Generator.Seed != 0 {
		selector = namer.NewSeededSelector(cfg.Generator.Seed)
	}

	composer := namer.New(reg,
		namer.WithSelector(selector),
		namer.WithCandidateCacheSize(cfg.Generator.CandidateCacheSize),
		namer.WithLogger(log.With(logger.Component("composer"))),
	)

	return &app{cfg: cfg, log: log, composer: composer}, nil
}

// newSource routes list URLs to the HTTP, file and, for s3:// base URLs,
// S3 fetchers.
func newSource(ctx context.Context, cfg config.Config, log *slog.Logger) (*namesource.Mux, error) {
	httpOpts := []namesource.HTTPOption{
		namesource.WithTimeout(cfg.Source.RequestTimeout),
		namesource.WithMaxRetries(cfg.Source.MaxRetries),
		namesource.WithUserAgent(cfg.Source.UserAgent),
		namesource.WithHTTPLogger(log.With(logger.Component("http_source"))),
	}
	if cfg.Source.BreakerThreshold > 0 {
		httpOpts = append(httpOpts, namesource.WithCircuitBreaker(
			namesource.NewCircuitBreaker(cfg.Source.BreakerThreshold, 1, cfg.Source.BreakerTimeout),
		))
	}

	muxOpts := []namesource.MuxOption{
		namesource.WithHTTP(namesource.NewHTTP(httpOpts...)),
		namesource.WithFile(namesource.NewFile(cfg.Source.FileRoot)),
	}

	if strings.HasPrefix(strings.ToLower(cfg.Source.BaseURL), "s3://") {
		s3src, err := namesource.NewS3(ctx, namesource.S3Config{
			Region:         cfg.S3.Region,
			AccessKeyID:    cfg.S3.AccessKeyID,
			SecretKey:      cfg.S3.SecretKey,
			Endpoint:       cfg.S3.Endpoint,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 source: %w", err)
		}
		muxOpts = append(muxOpts, namesource.WithS3(s3src))
	}

	return namesource.NewMux(muxOpts...), nil
}
