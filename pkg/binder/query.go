package binder

import (
	"net/http"
	"net/url"
)

// Query returns a binder that reads r.URL.Query() into the struct v points to.
//
// Supported field types: string, signed and unsigned integers, bool,
// slices of those (repeated or comma separated) and pointers to any of them.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return Values(r.URL.Query(), v)
	}
}

// Values binds already parsed query values into v.
func Values(values url.Values, v any) error {
	return bindToStruct(v, "query", values, ErrInvalidQuery)
}
