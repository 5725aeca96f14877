package namer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/namer/pkg/logger"
)

// Source fetches the raw newline-delimited text stored at url.
type Source interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context, url string) (string, error)

func (f SourceFunc) Fetch(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

const defaultFetchTimeout = 30 * time.Second

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithBaseURL sets the location the list files are fetched from.
// Empty values are ignored.
func WithBaseURL(base string) RegistryOption {
	return func(r *Registry) {
		if base != "" {
			r.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithFetchTimeout bounds a single list fetch. Non-positive values are ignored.
func WithFetchTimeout(d time.Duration) RegistryOption {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// Registry is the in-memory cache of name lists. Lists are populated lazily
// and never re-fetched once loaded, until Reset is called.
// Safe for concurrent use; reads of populated lists take no locks.
type Registry struct {
	src     Source
	baseURL string
	timeout time.Duration
	log     *slog.Logger

	lists [numKeys]atomic.Pointer[[]string]
	group singleflight.Group

	// mu orders stores against Reset.
	mu         sync.Mutex
	generation atomic.Uint64
}

// NewRegistry creates an empty registry backed by src.
func NewRegistry(src Source, opts ...RegistryOption) *Registry {
	if src == nil {
		panic("namer: nil source")
	}
	r := &Registry{
		src:     src,
		baseURL: DefaultBaseURL,
		timeout: defaultFetchTimeout,
		log:     logger.Noop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EnsurePopulated loads the first-name list for g and the surname list if
// either is still missing. Lists already loaded are left untouched and the
// source is not consulted for them.
//
// Concurrent callers asking for the same list share a single fetch. If ctx is
// done before the fetch finishes the caller gives up waiting; the fetch itself
// carries on, bounded by the registry fetch timeout, so other waiters still
// get its result.
func (r *Registry) EnsurePopulated(ctx context.Context, g Gender) error {
	first := firstNamesKey(g)
	if r.lists[first].Load() != nil && r.lists[keySurnames].Load() != nil {
		return nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error { return r.populate(egCtx, first) })
	eg.Go(func() error { return r.populate(egCtx, keySurnames) })
	return eg.Wait()
}

func (r *Registry) populate(ctx context.Context, key listKey) error {
	if r.lists[key].Load() != nil {
		return nil
	}

	gen := r.generation.Load()
	flight := fmt.Sprintf("%d/%s", gen, key)

	ch := r.group.DoChan(flight, func() (any, error) {
		if r.lists[key].Load() != nil {
			return nil, nil
		}
		return nil, r.fetch(context.WithoutCancel(ctx), key, gen)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, key, ctx.Err())
	}
}

func (r *Registry) fetch(ctx context.Context, key listKey, gen uint64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	url := r.URL(key.fileName())
	start := time.Now()
	r.log.DebugContext(ctx, "fetching name list", logger.List(key.String()), logger.URL(url))

	raw, err := r.src.Fetch(ctx, url)
	if err != nil {
		r.log.ErrorContext(ctx, "name list fetch failed",
			logger.List(key.String()),
			logger.URL(url),
			logger.Error(err),
		)
		return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, url, err)
	}

	lines := SplitLines(raw)

	r.mu.Lock()
	stale := r.generation.Load() != gen
	if !stale {
		r.lists[key].Store(&lines)
	}
	r.mu.Unlock()
	if stale {
		return fmt.Errorf("%w: %s: registry reset during fetch", ErrSourceUnavailable, url)
	}

	r.log.InfoContext(ctx, "name list loaded",
		logger.List(key.String()),
		logger.Count(len(lines)),
		logger.Duration(time.Since(start)),
	)
	return nil
}

// URL returns the full location of a list file.
func (r *Registry) URL(file string) string {
	return r.baseURL + "/" + file
}

// FirstNames returns the cached first names for g, or nil if not loaded.
// The returned slice is shared and must not be modified.
func (r *Registry) FirstNames(g Gender) []string {
	return r.load(firstNamesKey(g))
}

// Surnames returns the cached surnames, or nil if not loaded.
// The returned slice is shared and must not be modified.
func (r *Registry) Surnames() []string {
	return r.load(keySurnames)
}

// Populated reports whether both lists needed for g are loaded.
func (r *Registry) Populated(g Gender) bool {
	return r.lists[firstNamesKey(g)].Load() != nil && r.lists[keySurnames].Load() != nil
}

// Generation changes every time Reset is called. Callers deriving data from
// the lists use it to detect that their copy is stale.
func (r *Registry) Generation() uint64 {
	return r.generation.Load()
}

// Reset drops every cached list. Fetches still in flight finish but their
// results are discarded.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Lists are cleared before the generation moves so that snapshot never
	// pairs a list from the old generation with the new number.
	for i := range r.lists {
		r.lists[i].Store(nil)
	}
	r.generation.Add(1)
}

// snapshot returns the list stored under key together with the generation
// it belongs to. A nil list means it is not loaded in that generation.
func (r *Registry) snapshot(key listKey) ([]string, uint64) {
	for {
		gen := r.generation.Load()
		p := r.lists[key].Load()
		if r.generation.Load() != gen {
			continue
		}
		if p == nil {
			return nil, gen
		}
		return *p, gen
	}
}

func (r *Registry) load(key listKey) []string {
	if p := r.lists[key].Load(); p != nil {
		return *p
	}
	return nil
}
