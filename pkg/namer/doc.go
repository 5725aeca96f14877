// Package namer generates plausible human full names by combining randomly
// selected first names and surnames drawn from externally hosted word lists.
//
// Generation can be narrowed by gender and by prefix/suffix filters applied
// independently to the first name and the surname.
//
// # Architecture
//
//   • Registry caches the name lists in memory. Lists are fetched lazily from
//     a Source on first demand, at most once per key (one first-name list per
//     Gender plus a single surname list) and are immutable afterwards. A failed
//     fetch leaves nothing behind so a later call can retry.
//   • Filter narrows a list to the entries matching a prefix and a suffix.
//   • Selector draws uniformly random entries from a filtered list.
//   • Composer ties the pieces together and exposes the generation API.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/namer/pkg/namer"
//	    "github.com/dmitrymomot/namer/pkg/namesource"
//	)
//
//	reg := namer.NewRegistry(namesource.NewHTTP())
//	gen := namer.New(reg)
//
//	names, err := gen.GenerateFullNames(ctx,
//	    namer.WithCount(5),
//	    namer.WithGender(namer.Female),
//	    namer.WithNamePrefix("Ev"),
//	)
//
// Every generation method blocks until the lists are available. Use Async to
// get a Future instead:
//
//	f := namer.Async(ctx, gen.GenerateFirstNames, namer.WithCount(3))
//	names, err := f.Await()
//
// # Error Handling
//
//   • ErrSourceUnavailable – a list could not be fetched.
//   • ErrNoMatch – a filter left no candidates. ErrNoFirstNameMatch and
//     ErrNoSurnameMatch tell which side was empty.
//
// A negative or zero count is not an error: no names are returned.
package namer
