// Package namerapi exposes a namer.Composer over HTTP as a small JSON API.
//
// Routes:
//
//	GET /v1/names/first        random first names
//	GET /v1/names/last         random surnames
//	GET /v1/names/full         random "First Last" pairs
//	GET /v1/names/find/first   every first name matching the filter
//	GET /v1/names/find/last    every surname matching the filter
//	GET /healthz               liveness
//	GET /readyz                readiness, populates the unified corpus
//	GET /metrics               Prometheus metrics
//
// Query parameters are count, gender, prefix, suffix, surname_prefix and
// surname_suffix. On the surname-only routes prefix and suffix are accepted
// as shorthands for surname_prefix and surname_suffix.
//
// Every JSON body uses the same envelope:
//
//	{"data": [...], "meta": {"count": 3, "gender": "female"}}
//	{"error": {"code": "no_match", "message": "..."}}
//
// Error codes map to statuses: invalid_request 400, no_match 404,
// source_unavailable 503 and internal_error 500. Every response carries an
// X-Request-ID header which also appears in request logs.
package namerapi
