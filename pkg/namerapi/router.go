package namerapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/namer/pkg/httpserver"
	"github.com/dmitrymomot/namer/pkg/logger"
	"github.com/dmitrymomot/namer/pkg/namer"
)

// DefaultMaxCount caps the count parameter.
const DefaultMaxCount = 1000

// Option configures NewRouter.
type Option func(*options)

type options struct {
	log      *slog.Logger
	maxCount int
	registry *prometheus.Registry
}

// WithLogger sets the logger for request and error logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaxCount sets the largest accepted count.
func WithMaxCount(n int) Option {
	if n <= 0 {
		panic("WithMaxCount: n must be > 0")
	}
	return func(o *options) { o.maxCount = n }
}

// WithMetricsRegistry registers the API metrics with reg instead of a
// private registry. GET /metrics serves reg either way.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// NewRouter returns a chi router serving c.
func NewRouter(c *namer.Composer, opts ...Option) chi.Router {
	if c == nil {
		panic("namerapi: nil composer")
	}
	o := &options{log: logger.Noop(), maxCount: DefaultMaxCount}
	for _, opt := range opts {
		opt(o)
	}

	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}
	m := newMetrics(o.registry)
	h := &handlers{composer: c, log: o.log, maxCount: o.maxCount, metrics: m}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(o.log))
	r.Use(middleware.Recoverer)
	r.Use(m.middleware)

	r.Handle("/metrics", m.handler)

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(o.log, func(ctx context.Context) error {
		return c.Registry().EnsurePopulated(ctx, namer.Unified)
	}))

	r.Route("/v1/names", func(r chi.Router) {
		r.Get("/first", h.list(c.GenerateFirstNames, false))
		r.Get("/last", h.list(c.GenerateLastNames, true))
		r.Get("/full", h.list(c.GenerateFullNames, false))
		r.Route("/find", func(r chi.Router) {
			r.Get("/first", h.list(c.FindFirstNames, false))
			r.Get("/last", h.list(c.FindLastNames, true))
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = writeJSON(w, http.StatusNotFound, Envelope{Error: &ErrorDetail{Code: "not_found", Message: "route not found"}})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = writeJSON(w, http.StatusMethodNotAllowed, Envelope{Error: &ErrorDetail{Code: "method_not_allowed", Message: "method not allowed"}})
	})

	return r
}
