// Package binder fills tagged structs from HTTP query parameters.
//
// Fields are matched by their `query` tag, or by the lowercased field name
// when the tag is absent. A tag of "-" skips the field. Pointer fields stay
// nil unless the parameter is present, which lets handlers tell a missing
// value from a zero one.
//
//	type listParams struct {
//		Count  *int   `query:"count"`
//		Gender string `query:"gender"`
//	}
//
//	var p listParams
//	if err := binder.Query()(r, &p); err != nil {
//		// errors.Is(err, binder.ErrInvalidQuery)
//	}
package binder
