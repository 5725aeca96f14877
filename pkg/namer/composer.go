package namer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/namer/pkg/logger"
)

const (
	defaultCandidateCacheSize = 64
	maxLoadAttempts           = 3
)

// ComposerOption configures a Composer.
type ComposerOption func(*composerConfig)

type composerConfig struct {
	selector  Selector
	cacheSize int
	log       *slog.Logger
}

// WithSelector replaces the random source, e.g. with NewSeededSelector in tests.
func WithSelector(s Selector) ComposerOption {
	return func(c *composerConfig) {
		if s != nil {
			c.selector = s
		}
	}
}

// WithCandidateCacheSize sets how many filter results are memoized.
// Zero disables memoization.
func WithCandidateCacheSize(n int) ComposerOption {
	return func(c *composerConfig) {
		if n >= 0 {
			c.cacheSize = n
		}
	}
}

func WithLogger(l *slog.Logger) ComposerOption {
	return func(c *composerConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// Composer generates and looks up names using the lists held by a Registry.
// Safe for concurrent use.
type Composer struct {
	reg        *Registry
	selector   Selector
	candidates *candidateCache
	log        *slog.Logger
}

// New creates a Composer on top of reg.
func New(reg *Registry, opts ...ComposerOption) *Composer {
	if reg == nil {
		panic("namer: nil registry")
	}
	cfg := &composerConfig{
		cacheSize: defaultCandidateCacheSize,
		log:       logger.Noop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.selector == nil {
		cfg.selector = NewSelector()
	}
	return &Composer{
		reg:        reg,
		selector:   cfg.selector,
		candidates: newCandidateCache(cfg.cacheSize),
		log:        cfg.log,
	}
}

// Registry returns the registry the composer reads from.
func (c *Composer) Registry() *Registry {
	return c.reg
}

// GenerateFirstNames draws Count random first names from the list selected by
// Gender, filtered by NamePrefix and NameSuffix. Names may repeat.
func (c *Composer) GenerateFirstNames(ctx context.Context, opts ...Option) ([]string, error) {
	o := buildOptions(opts)
	candidates, err := c.firstNameCandidates(ctx, o)
	if err != nil {
		return nil, err
	}
	return c.draw(candidates, o.Count), nil
}

// GenerateLastNames draws Count random surnames filtered by SurnamePrefix and
// SurnameSuffix. Gender has no effect on surnames but still decides which
// first-name list is loaded alongside.
func (c *Composer) GenerateLastNames(ctx context.Context, opts ...Option) ([]string, error) {
	o := buildOptions(opts)
	candidates, err := c.surnameCandidates(ctx, o)
	if err != nil {
		return nil, err
	}
	return c.draw(candidates, o.Count), nil
}

// GenerateFullNames returns Count "First Last" names. First names and
// surnames are drawn independently and paired by position.
func (c *Composer) GenerateFullNames(ctx context.Context, opts ...Option) ([]string, error) {
	o := buildOptions(opts)

	firstCandidates, err := c.firstNameCandidates(ctx, o)
	if err != nil {
		return nil, err
	}
	lastCandidates, err := c.surnameCandidates(ctx, o)
	if err != nil {
		return nil, err
	}

	first := c.draw(firstCandidates, o.Count)
	last := c.draw(lastCandidates, o.Count)

	names := make([]string, len(first))
	for i := range first {
		names[i] = first[i] + " " + last[i]
	}

	c.log.DebugContext(ctx, "generated full names",
		logger.Gender(o.Gender.String()),
		logger.Count(len(names)),
	)
	return names, nil
}

// FindFirstNames returns every first name of the Gender list matching
// NamePrefix and NameSuffix, in list order. Count is ignored.
func (c *Composer) FindFirstNames(ctx context.Context, opts ...Option) ([]string, error) {
	o := buildOptions(opts)
	candidates, err := c.firstNameCandidates(ctx, o)
	if err != nil {
		return nil, err
	}
	return clone(candidates), nil
}

// FindLastNames returns every surname matching SurnamePrefix and
// SurnameSuffix, in list order. Count is ignored.
func (c *Composer) FindLastNames(ctx context.Context, opts ...Option) ([]string, error) {
	o := buildOptions(opts)
	candidates, err := c.surnameCandidates(ctx, o)
	if err != nil {
		return nil, err
	}
	return clone(candidates), nil
}

func (c *Composer) firstNameCandidates(ctx context.Context, o Options) ([]string, error) {
	key := firstNamesKey(o.Gender)
	names, gen, err := c.list(ctx, o.Gender, key)
	if err != nil {
		return nil, err
	}
	candidates := c.filtered(key, names, gen, o.NamePrefix, o.NameSuffix)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w (gender %s, prefix %q, suffix %q)",
			ErrNoFirstNameMatch, o.Gender, o.NamePrefix, o.NameSuffix)
	}
	return candidates, nil
}

func (c *Composer) surnameCandidates(ctx context.Context, o Options) ([]string, error) {
	names, gen, err := c.list(ctx, o.Gender, keySurnames)
	if err != nil {
		return nil, err
	}
	candidates := c.filtered(keySurnames, names, gen, o.SurnamePrefix, o.SurnameSuffix)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w (prefix %q, suffix %q)",
			ErrNoSurnameMatch, o.SurnamePrefix, o.SurnameSuffix)
	}
	return candidates, nil
}

// list loads the registry and returns the list for key with the generation
// it was loaded under. A Reset landing between the load and the read makes
// it load again, a bounded number of times.
func (c *Composer) list(ctx context.Context, g Gender, key listKey) ([]string, uint64, error) {
	for range maxLoadAttempts {
		if err := c.reg.EnsurePopulated(ctx, g); err != nil {
			return nil, 0, err
		}
		if names, gen := c.reg.snapshot(key); names != nil {
			return names, gen, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: %s: registry reset while loading", ErrSourceUnavailable, key)
}

// filtered memoizes Filter results. gen must be the generation names was
// read under.
func (c *Composer) filtered(key listKey, names []string, gen uint64, prefix, suffix string) []string {
	if prefix == "" && suffix == "" {
		return names
	}

	ck := candidateKey{
		generation: gen,
		list:       key,
		prefix:     prefix,
		suffix:     suffix,
	}
	if cached, ok := c.candidates.get(ck); ok {
		return cached
	}

	out := Filter(names, prefix, suffix)
	c.candidates.put(ck, out)
	return out
}

// draw picks n independent entries. candidates must not be empty.
func (c *Composer) draw(candidates []string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = c.selector.Pick(candidates)
	}
	return out
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
