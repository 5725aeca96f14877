package namer_test

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namer/pkg/namer"
)

func TestComposer_GenerateFirstNames(t *testing.T) {
	t.Parallel()

	gen := newComposer(exampleSource())

	names, err := gen.GenerateFirstNames(context.Background(), namer.WithCount(5), namer.WithNamePrefix("Ann"))
	require.NoError(t, err)
	require.Len(t, names, 5)
	for _, n := range names {
		assert.Contains(t, []string{"Anna", "Annette"}, n)
	}
}

func TestComposer_DefaultCount(t *testing.T) {
	t.Parallel()

	gen := newComposer(exampleSource())
	names, err := gen.GenerateFirstNames(context.Background())
	require.NoError(t, err)
	assert.Len(t, names, namer.DefaultCount)
}

func TestComposer_GenerateLastNames(t *testing.T) {
	t.Parallel()

	gen := newComposer(exampleSource())

	names, err := gen.GenerateLastNames(context.Background(), namer.WithCount(3), namer.WithSurnamePrefix("Lo"))
	require.NoError(t, err)
	require.Len(t, names, 3)
	for _, n := range names {
		assert.Contains(t, []string{"Lo", "Logan"}, n)
	}
}

func TestComposer_GenerateFullNames(t *testing.T) {
	t.Parallel()

	gen := newComposer(exampleSource())

	names, err := gen.GenerateFullNames(context.Background(),
		namer.WithCount(25),
		namer.WithGender(namer.Male),
		namer.WithNamePrefix("J"),
		namer.WithSurnameSuffix("n"),
	)
	require.NoError(t, err)
	require.Len(t, names, 25)
	for _, n := range names {
		parts := strings.Split(n, " ")
		require.Len(t, parts, 2, n)
		assert.Contains(t, []string{"John", "Justin"}, parts[0])
		assert.Equal(t, "Logan", parts[1])
	}
}

func TestComposer_GenderDoesNotAffectSurnames(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	gen := newComposer(src)
	ctx := context.Background()

	for _, g := range namer.Genders {
		names, err := gen.FindLastNames(ctx, namer.WithGender(g))
		require.NoError(t, err)
		assert.Equal(t, []string{"Lo", "Logan"}, names)
	}
	assert.Equal(t, 1, src.count(namer.SurnamesFile))
}

func TestComposer_ZeroAndNegativeCount(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	gen := newComposer(src)
	ctx := context.Background()

	for _, n := range []int{0, -3} {
		names, err := gen.GenerateFullNames(ctx, namer.WithCount(n))
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	}
	// population still happens for zero counts
	assert.Equal(t, 1, src.count(namer.FirstNamesFile))
}

func TestComposer_ZeroCountStillNeedsSource(t *testing.T) {
	t.Parallel()

	src := namer.SourceFunc(func(context.Context, string) (string, error) {
		return "", errors.New("unreachable")
	})
	gen := newComposer(src)

	_, err := gen.GenerateFirstNames(context.Background(), namer.WithCount(0))
	assert.ErrorIs(t, err, namer.ErrSourceUnavailable)
}

func TestComposer_NoMatch(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	gen := newComposer(src, namer.WithSelector(panicSelector{}))
	ctx := context.Background()

	_, err := gen.GenerateFirstNames(ctx, namer.WithNamePrefix("Z"))
	assert.ErrorIs(t, err, namer.ErrNoMatch)
	assert.ErrorIs(t, err, namer.ErrNoFirstNameMatch)
	assert.NotErrorIs(t, err, namer.ErrNoSurnameMatch)

	_, err = gen.GenerateLastNames(ctx, namer.WithSurnameSuffix("zz"))
	assert.ErrorIs(t, err, namer.ErrNoSurnameMatch)

	names, err := gen.GenerateFullNames(ctx, namer.WithSurnamePrefix("Q"))
	assert.ErrorIs(t, err, namer.ErrNoSurnameMatch)
	assert.Nil(t, names, "no partial results")

	_, err = gen.FindFirstNames(ctx, namer.WithNamePrefix("Anna"), namer.WithNameSuffix("x"))
	assert.ErrorIs(t, err, namer.ErrNoFirstNameMatch)

	_, err = gen.GenerateFirstNames(ctx, namer.WithCount(0), namer.WithNamePrefix("Z"))
	assert.ErrorIs(t, err, namer.ErrNoFirstNameMatch)
}

func TestComposer_SourceUnavailable(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	src.setFailure(namer.FirstNamesFile, errors.New("503"))
	gen := newComposer(src)

	names, err := gen.GenerateFullNames(context.Background())
	assert.ErrorIs(t, err, namer.ErrSourceUnavailable)
	assert.Nil(t, names)
}

func TestComposer_FindIsDeterministic(t *testing.T) {
	t.Parallel()

	gen := newComposer(exampleSource())
	ctx := context.Background()

	all, err := gen.FindFirstNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna", "Annette", "Bob"}, all)

	found, err := gen.FindFirstNames(ctx, namer.WithGender(namer.Female), namer.WithNamePrefix("Ann"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna", "Annette"}, found)

	// callers own the result
	found[0] = "Mutated"
	again, err := gen.FindFirstNames(ctx, namer.WithGender(namer.Female), namer.WithNamePrefix("Ann"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna", "Annette"}, again)
}

func TestComposer_FetchCountAcrossCalls(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	gen := newComposer(src)
	ctx := context.Background()

	for range 20 {
		_, err := gen.GenerateFullNames(ctx, namer.WithCount(2))
		require.NoError(t, err)
	}
	assert.Equal(t, 1, src.count(namer.FirstNamesFile))
	assert.Equal(t, 1, src.count(namer.SurnamesFile))
}

func TestComposer_ReproducibleWithSeed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := newComposer(exampleSource(), namer.WithSelector(namer.NewSeededSelector(99)))
	b := newComposer(exampleSource(), namer.WithSelector(namer.NewSeededSelector(99)))

	x, err := a.GenerateFullNames(ctx, namer.WithCount(8))
	require.NoError(t, err)
	y, err := b.GenerateFullNames(ctx, namer.WithCount(8))
	require.NoError(t, err)
	assert.Equal(t, x, y)
}

func TestComposer_ResetInvalidatesFilterCache(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	gen := newComposer(src)
	ctx := context.Background()

	found, err := gen.FindFirstNames(ctx, namer.WithNamePrefix("B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob"}, found)

	src.mu.Lock()
	src.bodies[namer.FirstNamesFile] = "Bella\nBrian"
	src.mu.Unlock()
	gen.Registry().Reset()

	found, err = gen.FindFirstNames(ctx, namer.WithNamePrefix("B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bella", "Brian"}, found)
}

func TestComposer_ConcurrentReset(t *testing.T) {
	t.Parallel()

	gen := newComposer(exampleSource())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resetDone := make(chan struct{})
	go func() {
		defer close(resetDone)
		for ctx.Err() == nil {
			gen.Registry().Reset()
			runtime.Gosched()
		}
	}()

	var wg sync.WaitGroup
	errs := make(chan error, 8*50)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				found, err := gen.FindFirstNames(ctx, namer.WithNamePrefix("B"))
				if err != nil {
					errs <- err
					continue
				}
				if !assert.Equal(t, []string{"Bob"}, found) {
					return
				}
			}
		}()
	}
	wg.Wait()
	cancel()
	<-resetDone
	close(errs)

	for err := range errs {
		assert.NotErrorIs(t, err, namer.ErrNoMatch)
		assert.ErrorIs(t, err, namer.ErrSourceUnavailable)
	}
}

func TestComposer_OptionsStruct(t *testing.T) {
	t.Parallel()

	gen := newComposer(exampleSource(), namer.WithCandidateCacheSize(0))

	names, err := gen.GenerateFullNames(context.Background(), namer.WithOptions(namer.Options{
		Count:         4,
		NamePrefix:    "Eve",
		SurnamePrefix: "Lo",
		SurnameSuffix: "o",
		Gender:        namer.Female,
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Evelyn Lo", "Evelyn Lo", "Evelyn Lo", "Evelyn Lo"}, names)
}

func TestAsync(t *testing.T) {
	t.Parallel()

	gen := newComposer(exampleSource())

	f := namer.Async(context.Background(), gen.GenerateLastNames, namer.WithCount(3))
	names, err := f.Await()
	require.NoError(t, err)
	assert.Len(t, names, 3)
	assert.True(t, f.IsComplete())

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = namer.Async(canceled, gen.GenerateFirstNames).Await()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAsync_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	src.gate = make(chan struct{})
	gen := newComposer(src)

	f := namer.Async(context.Background(), gen.FindFirstNames)
	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, namer.ErrTimeout)
	assert.False(t, f.IsComplete())

	close(src.gate)
	names, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna", "Annette", "Bob"}, names)
}

// panicSelector fails the test run if the composer ever draws from an
// empty candidate set.
type panicSelector struct{}

func (panicSelector) Pick(c []string) string {
	if len(c) == 0 {
		panic("pick from empty candidates")
	}
	return c[0]
}
