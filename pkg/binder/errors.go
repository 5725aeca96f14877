package binder

import "errors"

// ErrInvalidQuery is returned when a query parameter cannot be converted to
// the type of the field it binds to.
var ErrInvalidQuery = errors.New("invalid query parameter")
