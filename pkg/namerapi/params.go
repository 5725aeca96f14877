package namerapi

import (
	"fmt"
	"net/url"

	"github.com/dmitrymomot/namer/pkg/binder"
	"github.com/dmitrymomot/namer/pkg/namer"
	"github.com/dmitrymomot/namer/pkg/validator"
)

// genderChoices are the spellings namer.ParseGender accepts.
var genderChoices = []string{"unified", "any", "all", "male", "m", "female", "f"}

// listParams are the query parameters shared by every name endpoint.
type listParams struct {
	Count         *int   `query:"count"`
	Gender        string `query:"gender"`
	Prefix        string `query:"prefix"`
	Suffix        string `query:"suffix"`
	SurnamePrefix string `query:"surname_prefix"`
	SurnameSuffix string `query:"surname_suffix"`
}

func (p listParams) validate(maxCount int) error {
	var rules []validator.Rule
	if p.Count != nil {
		rules = append(rules, validator.Between("count", *p.Count, 0, maxCount))
	}
	rules = append(rules, validator.When(p.Gender != "",
		validator.OneOfFold("gender", p.Gender, genderChoices...))...)
	return validator.Apply(rules...)
}

// query is the parsed form of the shared query parameters.
type query struct {
	opts namer.Options
}

// parseQuery binds and validates count, gender and the filter parameters.
// surnameOnly lets prefix and suffix stand in for the surname filter.
func parseQuery(v url.Values, maxCount int, surnameOnly bool) (query, error) {
	var p listParams
	if err := binder.Values(v, &p); err != nil {
		return query{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := p.validate(maxCount); err != nil {
		return query{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	o := namer.DefaultOptions()
	if p.Count != nil {
		o.Count = *p.Count
	}

	g, err := namer.ParseGender(p.Gender)
	if err != nil {
		return query{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	o.Gender = g

	o.NamePrefix = p.Prefix
	o.NameSuffix = p.Suffix
	o.SurnamePrefix = p.SurnamePrefix
	o.SurnameSuffix = p.SurnameSuffix

	if surnameOnly {
		if o.SurnamePrefix == "" {
			o.SurnamePrefix = o.NamePrefix
		}
		if o.SurnameSuffix == "" {
			o.SurnameSuffix = o.NameSuffix
		}
	}

	return query{opts: o}, nil
}

func (q query) meta(n int, surnameOnly bool) map[string]any {
	m := map[string]any{"count": n}
	if !surnameOnly {
		m["gender"] = q.opts.Gender.String()
	}
	return m
}
