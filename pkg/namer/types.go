package namer

import (
	"fmt"
	"strings"
)

// Gender selects which first-name list to draw from. Surnames are never gendered.
type Gender int

const (
	Unified Gender = iota // all first names
	Male
	Female
)

// Genders lists every supported Gender in declaration order.
var Genders = []Gender{Unified, Male, Female}

func (g Gender) String() string {
	switch g {
	case Unified:
		return "unified"
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return fmt.Sprintf("gender(%d)", int(g))
	}
}

func (g Gender) valid() bool {
	return g >= Unified && g <= Female
}

// ParseGender converts a user supplied string to a Gender.
// An empty string maps to Unified.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unified", "any", "all":
		return Unified, nil
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return Unified, fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

// DefaultBaseURL is where the public name lists are hosted.
const DefaultBaseURL = "https://cdn.jsdelivr.net/gh/Aptivi/NamesList@master/Processed"

// List file names under the base URL.
const (
	FirstNamesFile       = "FirstNames.txt"
	MaleFirstNamesFile   = "MaleFirstNames.txt"
	FemaleFirstNamesFile = "FemaleFirstNames.txt"
	SurnamesFile         = "Surnames.txt"
)

// listKey identifies one cached list.
type listKey int

const (
	keyUnified listKey = iota
	keyMale
	keyFemale
	keySurnames
	numKeys
)

func firstNamesKey(g Gender) listKey {
	switch g {
	case Male:
		return keyMale
	case Female:
		return keyFemale
	default:
		return keyUnified
	}
}

func (k listKey) fileName() string {
	switch k {
	case keyMale:
		return MaleFirstNamesFile
	case keyFemale:
		return FemaleFirstNamesFile
	case keySurnames:
		return SurnamesFile
	default:
		return FirstNamesFile
	}
}

func (k listKey) String() string {
	switch k {
	case keyMale:
		return "male_first_names"
	case keyFemale:
		return "female_first_names"
	case keySurnames:
		return "surnames"
	default:
		return "first_names"
	}
}

// DefaultCount is the number of names generated when no count is given.
const DefaultCount = 10

// Options configures a single generation or lookup call.
type Options struct {
	// Count is the number of names to generate. Zero or negative yields none.
	// Default: 10
	Count int

	// NamePrefix and NameSuffix filter first names. Empty means unconstrained.
	NamePrefix string
	NameSuffix string

	// SurnamePrefix and SurnameSuffix filter surnames. Empty means unconstrained.
	SurnamePrefix string
	SurnameSuffix string

	// Gender selects the first-name list.
	// Default: Unified
	Gender Gender
}

// DefaultOptions returns the options used when a call passes none.
func DefaultOptions() Options {
	return Options{
		Count:  DefaultCount,
		Gender: Unified,
	}
}

// Option adjusts the Options of a single call.
type Option func(*Options)

// WithOptions replaces all options at once.
func WithOptions(o Options) Option {
	return func(opts *Options) { *opts = o }
}

// WithCount sets how many names to generate.
func WithCount(n int) Option {
	return func(o *Options) { o.Count = n }
}

func WithNamePrefix(p string) Option {
	return func(o *Options) { o.NamePrefix = p }
}

func WithNameSuffix(s string) Option {
	return func(o *Options) { o.NameSuffix = s }
}

func WithSurnamePrefix(p string) Option {
	return func(o *Options) { o.SurnamePrefix = p }
}

func WithSurnameSuffix(s string) Option {
	return func(o *Options) { o.SurnameSuffix = s }
}

// WithGender selects the first-name list. Unknown values fall back to Unified.
func WithGender(g Gender) Option {
	return func(o *Options) {
		if !g.valid() {
			g = Unified
		}
		o.Gender = g
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.Gender.valid() {
		o.Gender = Unified
	}
	return o
}
