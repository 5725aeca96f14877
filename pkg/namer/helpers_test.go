package namer_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/namer/pkg/namer"
)

const testBase = "https://lists.test/Processed"

// fakeSource serves fixed list bodies keyed by file name and counts fetches.
type fakeSource struct {
	mu     sync.Mutex
	bodies map[string]string
	fail   map[string]error
	calls  map[string]*atomic.Int32
	gate   chan struct{}
}

func newFakeSource(bodies map[string]string) *fakeSource {
	return &fakeSource{
		bodies: bodies,
		fail:   make(map[string]error),
		calls:  make(map[string]*atomic.Int32),
	}
}

func (f *fakeSource) Fetch(ctx context.Context, url string) (string, error) {
	file := url[strings.LastIndex(url, "/")+1:]

	f.mu.Lock()
	counter, ok := f.calls[file]
	if !ok {
		counter = new(atomic.Int32)
		f.calls[file] = counter
	}
	gate := f.gate
	err := f.fail[file]
	body, found := f.bodies[file]
	f.mu.Unlock()

	counter.Add(1)

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.New("404 not found")
	}
	return body, nil
}

func (f *fakeSource) setFailure(file string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.fail, file)
		return
	}
	f.fail[file] = err
}

func (f *fakeSource) count(file string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.calls[file]; ok {
		return int(c.Load())
	}
	return 0
}

func exampleSource() *fakeSource {
	return newFakeSource(map[string]string{
		namer.FirstNamesFile:       "Anna\r\nAnnette\r\nBob",
		namer.MaleFirstNamesFile:   "Bob\nJohn\nJustin",
		namer.FemaleFirstNamesFile: "Anna\nAnnette\nEvelyn",
		namer.SurnamesFile:         "Lo\nLogan",
	})
}

func newComposer(src namer.Source, opts ...namer.ComposerOption) *namer.Composer {
	reg := namer.NewRegistry(src, namer.WithBaseURL(testBase))
	opts = append([]namer.ComposerOption{namer.WithSelector(namer.NewSeededSelector(42))}, opts...)
	return namer.New(reg, opts...)
}
