package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namer/pkg/binder"
)

type params struct {
	Count    *int     `query:"count"`
	Gender   string   `query:"gender"`
	Prefix   string   `query:"prefix,omitempty"`
	Seed     uint64   `query:"seed"`
	Verbose  bool     `query:"verbose"`
	Lists    []string `query:"lists"`
	Internal string   `query:"-"`
	Fallback string
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("binds every supported type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/names/first?count=3&gender=female&prefix=Ann&seed=42&verbose=yes&lists=first,last&lists=surnames&fallback=x", nil)

		var p params
		require.NoError(t, binder.Query()(req, &p))

		require.NotNil(t, p.Count)
		assert.Equal(t, 3, *p.Count)
		assert.Equal(t, "female", p.Gender)
		assert.Equal(t, "Ann", p.Prefix)
		assert.Equal(t, uint64(42), p.Seed)
		assert.True(t, p.Verbose)
		assert.Equal(t, []string{"first", "last", "surnames"}, p.Lists)
		assert.Equal(t, "x", p.Fallback)
	})

	t.Run("missing and blank values leave fields untouched", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?count=&gender=", nil)

		p := params{Gender: "male"}
		require.NoError(t, binder.Query()(req, &p))

		assert.Nil(t, p.Count)
		assert.Equal(t, "male", p.Gender)
	})

	t.Run("dash tag is skipped", func(t *testing.T) {
		t.Parallel()
		p := params{Internal: "kept"}
		require.NoError(t, binder.Values(url.Values{"internal": {"changed"}, "-": {"changed"}}, &p))
		assert.Equal(t, "kept", p.Internal)
	})
}

func TestQuery_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values url.Values
	}{
		{"non numeric count", url.Values{"count": {"abc"}}},
		{"negative unsigned", url.Values{"seed": {"-1"}}},
		{"bad bool", url.Values{"verbose": {"maybe"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var p params
			err := binder.Values(tt.values, &p)
			require.Error(t, err)
			assert.ErrorIs(t, err, binder.ErrInvalidQuery)
		})
	}

	t.Run("target must be a struct pointer", func(t *testing.T) {
		t.Parallel()
		var p params
		assert.ErrorIs(t, binder.Values(url.Values{}, p), binder.ErrInvalidQuery)
		assert.ErrorIs(t, binder.Values(url.Values{}, (*params)(nil)), binder.ErrInvalidQuery)

		n := 0
		assert.ErrorIs(t, binder.Values(url.Values{}, &n), binder.ErrInvalidQuery)
	})
}
