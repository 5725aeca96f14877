package namer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namer/pkg/namer"
)

func TestRegistry_EnsurePopulated(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	reg := namer.NewRegistry(src, namer.WithBaseURL(testBase))
	ctx := context.Background()

	assert.False(t, reg.Populated(namer.Unified))
	assert.Nil(t, reg.FirstNames(namer.Unified))

	require.NoError(t, reg.EnsurePopulated(ctx, namer.Unified))
	assert.True(t, reg.Populated(namer.Unified))
	assert.Equal(t, []string{"Anna", "Annette", "Bob"}, reg.FirstNames(namer.Unified))
	assert.Equal(t, []string{"Lo", "Logan"}, reg.Surnames())

	// other genders are independent
	assert.False(t, reg.Populated(namer.Male))
	assert.Equal(t, 0, src.count(namer.MaleFirstNamesFile))
}

func TestRegistry_FetchesOncePerKey(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	reg := namer.NewRegistry(src, namer.WithBaseURL(testBase))
	ctx := context.Background()

	for range 10 {
		for _, g := range namer.Genders {
			require.NoError(t, reg.EnsurePopulated(ctx, g))
		}
	}

	assert.Equal(t, 1, src.count(namer.FirstNamesFile))
	assert.Equal(t, 1, src.count(namer.MaleFirstNamesFile))
	assert.Equal(t, 1, src.count(namer.FemaleFirstNamesFile))
	assert.Equal(t, 1, src.count(namer.SurnamesFile))
}

func TestRegistry_GenderSelectsFile(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var urls []string
	src := namer.SourceFunc(func(_ context.Context, url string) (string, error) {
		mu.Lock()
		urls = append(urls, url)
		mu.Unlock()
		return "x", nil
	})
	reg := namer.NewRegistry(src, namer.WithBaseURL(testBase+"/"))

	require.NoError(t, reg.EnsurePopulated(context.Background(), namer.Female))
	assert.ElementsMatch(t, []string{
		testBase + "/" + namer.FemaleFirstNamesFile,
		testBase + "/" + namer.SurnamesFile,
	}, urls)
}

func TestRegistry_FailureIsRetryable(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	cause := errors.New("connection refused")
	src.setFailure(namer.SurnamesFile, cause)
	reg := namer.NewRegistry(src, namer.WithBaseURL(testBase))
	ctx := context.Background()

	err := reg.EnsurePopulated(ctx, namer.Unified)
	require.Error(t, err)
	assert.ErrorIs(t, err, namer.ErrSourceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, reg.Surnames(), "failed fetch must not be cached")
	assert.False(t, reg.Populated(namer.Unified))

	src.setFailure(namer.SurnamesFile, nil)
	require.NoError(t, reg.EnsurePopulated(ctx, namer.Unified))
	assert.Equal(t, []string{"Lo", "Logan"}, reg.Surnames())
	assert.Equal(t, 2, src.count(namer.SurnamesFile))
	assert.Equal(t, 1, src.count(namer.FirstNamesFile))
}

func TestRegistry_SingleFlight(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	src.gate = make(chan struct{})
	reg := namer.NewRegistry(src, namer.WithBaseURL(testBase))

	const callers = 16
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- reg.EnsurePopulated(context.Background(), namer.Male)
		}()
	}

	require.Eventually(t, func() bool {
		return src.count(namer.MaleFirstNamesFile) >= 1 && src.count(namer.SurnamesFile) >= 1
	}, time.Second, 5*time.Millisecond)
	// give late callers a chance to pile up behind the in-flight fetch
	time.Sleep(20 * time.Millisecond)
	close(src.gate)

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, src.count(namer.MaleFirstNamesFile))
	assert.Equal(t, 1, src.count(namer.SurnamesFile))
}

func TestRegistry_CallerContextCanceled(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	src.gate = make(chan struct{})
	reg := namer.NewRegistry(src, namer.WithBaseURL(testBase))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := reg.EnsurePopulated(ctx, namer.Unified)
	require.Error(t, err)
	assert.ErrorIs(t, err, namer.ErrSourceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// the shared fetch keeps going and lands for later callers
	close(src.gate)
	require.Eventually(t, func() bool { return reg.Populated(namer.Unified) }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, src.count(namer.FirstNamesFile))
}

func TestRegistry_FetchTimeout(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	src.gate = make(chan struct{}) // never opened
	reg := namer.NewRegistry(src,
		namer.WithBaseURL(testBase),
		namer.WithFetchTimeout(20*time.Millisecond),
	)

	err := reg.EnsurePopulated(context.Background(), namer.Unified)
	require.Error(t, err)
	assert.ErrorIs(t, err, namer.ErrSourceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, reg.Populated(namer.Unified))
}

func TestRegistry_Reset(t *testing.T) {
	t.Parallel()

	src := exampleSource()
	reg := namer.NewRegistry(src, namer.WithBaseURL(testBase))
	ctx := context.Background()

	require.NoError(t, reg.EnsurePopulated(ctx, namer.Unified))
	gen := reg.Generation()

	reg.Reset()
	assert.NotEqual(t, gen, reg.Generation())
	assert.False(t, reg.Populated(namer.Unified))
	assert.Nil(t, reg.Surnames())

	require.NoError(t, reg.EnsurePopulated(ctx, namer.Unified))
	assert.Equal(t, 2, src.count(namer.FirstNamesFile))
}

func TestNewRegistry_NilSourcePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { namer.NewRegistry(nil) })
}

func TestParseGender(t *testing.T) {
	t.Parallel()

	tests := map[string]namer.Gender{
		"":        namer.Unified,
		"any":     namer.Unified,
		"Unified": namer.Unified,
		"male":    namer.Male,
		"M":       namer.Male,
		"female":  namer.Female,
		" f ":     namer.Female,
	}
	for in, want := range tests {
		got, err := namer.ParseGender(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := namer.ParseGender("robot")
	assert.ErrorIs(t, err, namer.ErrInvalidGender)

	assert.Equal(t, "female", namer.Female.String())
}
