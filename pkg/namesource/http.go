package namesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/namer/pkg/logger"
)

const (
	defaultUserAgent = "namer/1.0"
	defaultMaxBytes  = 32 << 20
)

// HTTPOption configures an HTTP source.
type HTTPOption func(*HTTP)

// WithHTTPClient replaces the underlying client. Nil is ignored.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTP) {
		if c != nil {
			h.client = c
		}
	}
}

// WithTimeout bounds each attempt. Non-positive values are ignored.
func WithTimeout(d time.Duration) HTTPOption {
	return func(h *HTTP) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// WithMaxRetries sets how many times a failed attempt is repeated.
// Zero disables retries; negative values are ignored.
func WithMaxRetries(n int) HTTPOption {
	return func(h *HTTP) {
		if n >= 0 {
			h.maxRetries = n
		}
	}
}

func WithBackoff(b BackoffStrategy) HTTPOption {
	return func(h *HTTP) {
		if b != nil {
			h.backoff = b
		}
	}
}

func WithCircuitBreaker(cb *CircuitBreaker) HTTPOption {
	return func(h *HTTP) { h.breaker = cb }
}

// WithMaxBytes limits the size of a downloaded list.
func WithMaxBytes(n int64) HTTPOption {
	return func(h *HTTP) {
		if n > 0 {
			h.maxBytes = n
		}
	}
}

func WithUserAgent(ua string) HTTPOption {
	return func(h *HTTP) {
		if ua != "" {
			h.userAgent = ua
		}
	}
}

func WithHTTPLogger(l *slog.Logger) HTTPOption {
	return func(h *HTTP) {
		if l != nil {
			h.log = l
		}
	}
}

// HTTP fetches lists with GET requests. Zero value is not usable; use NewHTTP.
type HTTP struct {
	client     *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    BackoffStrategy
	breaker    *CircuitBreaker
	maxBytes   int64
	userAgent  string
	log        *slog.Logger
}

// NewHTTP returns an HTTP source with a pooled client, a 15 second attempt
// timeout and two retries using DefaultBackoffStrategy.
func NewHTTP(opts ...HTTPOption) *HTTP {
	h := &HTTP{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        16,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout:    15 * time.Second,
		maxRetries: 2,
		backoff:    DefaultBackoffStrategy(),
		maxBytes:   defaultMaxBytes,
		userAgent:  defaultUserAgent,
		log:        logger.Noop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Fetch downloads rawURL and returns the body as text.
func (h *HTTP) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := validateHTTPURL(rawURL); err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 0; attempt <= h.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(h.backoff.NextInterval(attempt)):
			}
		}

		// Earlier attempts may have tripped the breaker.
		if h.breaker != nil && !h.breaker.Allow() {
			if lastErr != nil {
				return "", fmt.Errorf("%w after %d attempts: %w", ErrCircuitOpen, attempt, lastErr)
			}
			return "", ErrCircuitOpen
		}

		body, status, err := h.attempt(ctx, rawURL)
		if h.breaker != nil {
			if err == nil {
				h.breaker.RecordSuccess()
			} else {
				h.breaker.RecordFailure()
			}
		}
		if err == nil {
			return body, nil
		}

		h.log.WarnContext(ctx, "name list request failed",
			logger.URL(rawURL),
			logger.Attempt(attempt+1),
			logger.StatusCode(status),
			logger.Error(err),
		)
		lastErr = err

		if isPermanent(status, err) {
			return "", fmt.Errorf("%w: %w", ErrPermanentFailure, err)
		}
		if ctx.Err() != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("%w after %d attempts: %w", ErrFetchFailed, h.maxRetries+1, lastErr)
}

func (h *HTTP) attempt(ctx context.Context, rawURL string) (string, int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := h.client.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return "", 0, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return "", 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain a little so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return "", resp.StatusCode, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBytes+1))
	if err != nil {
		return "", resp.StatusCode, err
	}
	if int64(len(data)) > h.maxBytes {
		return "", resp.StatusCode, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, h.maxBytes)
	}
	return string(data), resp.StatusCode, nil
}

func validateHTTPURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}

// isPermanent reports whether retrying cannot help. Most 4xx responses are
// final; 408, 425 and 429 are transient. Oversized lists never shrink.
func isPermanent(status int, err error) bool {
	if errors.Is(err, ErrTooLarge) || errors.Is(err, ErrInvalidURL) {
		return true
	}
	if status >= 400 && status < 500 {
		switch status {
		case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
			return false
		default:
			return true
		}
	}
	return false
}
