// Package validator provides rule based validation for request parameters.
//
// Rules are plain values built by constructors such as MinNum or OneOf and
// evaluated together by Apply, which reports every failing rule at once:
//
//	err := validator.Apply(
//		validator.MinNum("count", n, 0),
//		validator.MaxNum("count", n, maxCount),
//	)
//	if validator.IsValidationError(err) {
//		// respond with 400
//	}
package validator
