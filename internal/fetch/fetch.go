// Package fetch retrieves question bank text from a URL or a local path.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxSize caps a downloaded bank body in bytes.
	DefaultMaxSize = 4 << 20
)

var (
	// ErrNoSource is returned when Fetch is called with an empty source.
	ErrNoSource = errors.New("no bank source")

	// ErrTooLarge is returned when a download exceeds the size cap.
	ErrTooLarge = errors.New("bank body too large")
)

// Fetcher downloads bank text.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	maxSize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithTimeout sets the per-fetch timeout. Zero or negative keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithMaxSize sets the download size cap. Zero or negative keeps the default.
func WithMaxSize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxSize = n
		}
	}
}

// New creates a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
		maxSize: DefaultMaxSize,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Fetch returns the text at src. An http or https source is downloaded;
// anything else is read from disk.
func (f *Fetcher) Fetch(ctx context.Context, src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", ErrNoSource
	}

	if !isURL(src) {
		data, err := os.ReadFile(src)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", src, err)
		}
		return string(data), nil
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	data, err := f.download(ctx, src)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", src, err)
	}
	return string(data), nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, f.maxSize)
	}
	return data, nil
}

func isURL(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
