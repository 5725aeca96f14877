package namesource

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Fetcher is the contract shared by every source in this package.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// MuxOption registers a Fetcher with a Mux.
type MuxOption func(*Mux)

// WithHTTP serves http and https URLs.
func WithHTTP(f Fetcher) MuxOption {
	return func(m *Mux) {
		m.Handle("http", f)
		m.Handle("https", f)
	}
}

// WithFile serves file URLs and plain paths.
func WithFile(f Fetcher) MuxOption {
	return func(m *Mux) {
		m.Handle("file", f)
		m.Handle("", f)
	}
}

// WithS3 serves s3 URLs.
func WithS3(f Fetcher) MuxOption {
	return func(m *Mux) { m.Handle("s3", f) }
}

// Mux picks a Fetcher by URL scheme.
// Register everything before the first Fetch; Handle is not safe to call
// concurrently with Fetch.
type Mux struct {
	schemes map[string]Fetcher
}

func NewMux(opts ...MuxOption) *Mux {
	m := &Mux{schemes: make(map[string]Fetcher)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle registers f for scheme. The empty scheme matches plain paths.
func (m *Mux) Handle(scheme string, f Fetcher) {
	if f == nil {
		return
	}
	m.schemes[strings.ToLower(scheme)] = f
}

func (m *Mux) Fetch(ctx context.Context, rawURL string) (string, error) {
	scheme := ""
	if strings.Contains(rawURL, "://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
		}
		scheme = strings.ToLower(u.Scheme)
	}

	f, ok := m.schemes[scheme]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
	return f.Fetch(ctx, rawURL)
}
