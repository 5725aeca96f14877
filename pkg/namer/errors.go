package namer

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when a name list cannot be fetched.
	ErrSourceUnavailable = errors.New("namer: name source unavailable")

	// ErrNoMatch is returned when a prefix/suffix filter leaves no candidates.
	ErrNoMatch = errors.New("namer: no names match the filter")

	// ErrNoFirstNameMatch narrows ErrNoMatch to the first-name list.
	ErrNoFirstNameMatch = fmt.Errorf("%w: first names", ErrNoMatch)

	// ErrNoSurnameMatch narrows ErrNoMatch to the surname list.
	ErrNoSurnameMatch = fmt.Errorf("%w: surnames", ErrNoMatch)

	// ErrInvalidGender is returned by ParseGender for unknown values.
	ErrInvalidGender = errors.New("namer: invalid gender")

	ErrTimeout = errors.New("namer: timed out waiting for future completion")
)
