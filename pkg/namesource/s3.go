package namesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API used by S3.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config holds connection settings for S3 or an S3-compatible service.
type S3Config struct {
	Region         string
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // optional, for S3-compatible services
	ForcePathStyle bool   // required by MinIO and friends
}

// S3Option configures NewS3.
type S3Option func(*s3Options)

type s3Options struct {
	client     S3Client
	httpClient *http.Client
	maxBytes   int64
}

// WithS3Client uses a pre-configured client, e.g. a mock in tests.
func WithS3Client(c S3Client) S3Option {
	return func(o *s3Options) { o.client = c }
}

// WithS3HTTPClient sets the HTTP client the SDK uses.
func WithS3HTTPClient(c *http.Client) S3Option {
	return func(o *s3Options) { o.httpClient = c }
}

// S3 reads lists from s3://bucket/key URLs. Safe for concurrent use.
type S3 struct {
	client   S3Client
	maxBytes int64
}

// NewS3 builds an S3 source. Region is required unless a client is supplied.
func NewS3(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3, error) {
	o := &s3Options{maxBytes: defaultMaxBytes}
	for _, opt := range opts {
		opt(o)
	}

	if o.client != nil {
		return &S3{client: o.client, maxBytes: o.maxBytes}, nil
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: s3 region is required", ErrInvalidConfig)
	}

	awsOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOpts = append(awsOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}
	if o.httpClient != nil {
		awsOpts = append(awsOpts, config.WithHTTPClient(o.httpClient))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, awsOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %w", ErrInvalidConfig, err)
	}

	client := s3.NewFromConfig(awsCfg, func(so *s3.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.ForcePathStyle
	})

	return &S3{client: client, maxBytes: o.maxBytes}, nil
}

// Fetch downloads the object addressed by an s3://bucket/key URL.
func (s *S3) Fetch(ctx context.Context, rawURL string) (string, error) {
	bucket, key, err := parseS3URL(rawURL)
	if err != nil {
		return "", err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", classifyS3Error(err, rawURL)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(out.Body, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrFetchFailed, rawURL, err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: %s", ErrTooLarge, rawURL)
	}
	return string(data), nil
}

func parseS3URL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("%w: expected s3://bucket/key, got %q", ErrInvalidURL, rawURL)
	}
	return u.Host, key, nil
}

func classifyS3Error(err error, rawURL string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrTimeout, rawURL)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrNotFound, rawURL)
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: bucket of %s", ErrNotFound, rawURL)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %s", ErrNotFound, rawURL)
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s", ErrAccessDenied, rawURL)
		case "RequestTimeout":
			return fmt.Errorf("%w: %s", ErrTimeout, rawURL)
		default:
			return fmt.Errorf("%w: %s (code: %s): %w", ErrFetchFailed, rawURL, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("%w: %s: %w", ErrFetchFailed, rawURL, err)
}
