package namesource

import "errors"

var (
	ErrInvalidURL        = errors.New("namesource: invalid url")
	ErrUnsupportedScheme = errors.New("namesource: unsupported url scheme")
	ErrUnexpectedStatus  = errors.New("namesource: unexpected http status")
	ErrPermanentFailure  = errors.New("namesource: permanent failure")
	ErrFetchFailed       = errors.New("namesource: fetch failed")
	ErrTimeout           = errors.New("namesource: request timeout")
	ErrCircuitOpen       = errors.New("namesource: circuit breaker is open")
	ErrTooLarge          = errors.New("namesource: list exceeds size limit")
	ErrNotFound          = errors.New("namesource: list not found")
	ErrAccessDenied      = errors.New("namesource: access denied")
	ErrInvalidConfig     = errors.New("namesource: invalid configuration")
)

// IsCircuitOpen reports whether err was caused by an open circuit breaker.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}
