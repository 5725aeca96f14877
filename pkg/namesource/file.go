package namesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// File reads lists from the local filesystem.
type File struct {
	root     string
	maxBytes int64
}

// NewFile returns a File source. Relative paths are resolved against root
// and may not escape it; an empty root means the working directory.
func NewFile(root string) *File {
	return &File{root: root, maxBytes: defaultMaxBytes}
}

// Fetch accepts file:// URLs and plain paths.
func (f *File) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := f.resolve(rawURL)
	if err != nil {
		return "", err
	}

	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%w: %s", ErrAccessDenied, path)
		}
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer func() { _ = fh.Close() }()

	data, err := io.ReadAll(io.LimitReader(fh, f.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if int64(len(data)) > f.maxBytes {
		return "", fmt.Errorf("%w: %s", ErrTooLarge, path)
	}
	return string(data), nil
}

func (f *File) resolve(rawURL string) (string, error) {
	path := rawURL
	if strings.Contains(rawURL, "://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
		}
		if u.Scheme != "file" {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
		}
		if u.Host != "" && u.Host != "localhost" {
			return "", fmt.Errorf("%w: remote file host %q", ErrInvalidURL, u.Host)
		}
		path = u.Path
	}
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidURL)
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	if !filepath.IsLocal(path) {
		return "", fmt.Errorf("%w: path escapes root: %s", ErrInvalidURL, path)
	}
	return filepath.Join(f.root, path), nil
}
