// Package namesource provides the transports namer uses to fetch raw name
// lists. Every type here satisfies namer.Source:
//
//	Fetch(ctx context.Context, url string) (string, error)
//
// HTTP downloads lists over http(s) with per-attempt timeouts, retries with a
// pluggable BackoffStrategy and an optional CircuitBreaker. Client errors
// (4xx other than 408, 425 and 429) are permanent and never retried.
//
// File reads lists from local disk (file:// URLs or plain paths), which is
// handy for air-gapped deployments and tests.
//
// S3 reads lists from s3://bucket/key URLs through aws-sdk-go-v2 and works
// with S3-compatible services such as MinIO.
//
// Mux dispatches on the URL scheme so a single base URL setting can point at
// any of the above:
//
//	src := namesource.NewMux(
//	    namesource.WithHTTP(namesource.NewHTTP(namesource.WithMaxRetries(2))),
//	    namesource.WithFile(namesource.NewFile("")),
//	)
//	reg := namer.NewRegistry(src, namer.WithBaseURL("file:///srv/names"))
package namesource
