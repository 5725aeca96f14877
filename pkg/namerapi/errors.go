package namerapi

import "errors"

// ErrInvalidRequest wraps every query parameter problem.
var ErrInvalidRequest = errors.New("invalid request")
