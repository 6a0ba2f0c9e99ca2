package directory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Fetcher loads the full user directory.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]User, error)
}

// Ensure both sources implement Fetcher at compile time.
var (
	_ Fetcher = (*Client)(nil)
	_ Fetcher = (*FileSource)(nil)
)

const (
	defaultUserAgent = "usersearch/0.1"
	defaultTimeout   = 10 * time.Second
)

// Client fetches the directory over HTTP.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	logger    *log.Logger
}

// NewClient builds a Client for the given http(s) URL.
func NewClient(rawURL string, timeout time.Duration, logger *log.Logger) (*Client, error) {
	endpoint, err := parseEndpoint(rawURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:  endpoint,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		logger:    orDiscard(logger),
	}, nil
}

// URL returns the endpoint the client fetches.
func (c *Client) URL() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchUsers retrieves and decodes the directory.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, c.endpoint.Redacted(), resp.StatusCode)
	}

	users, skipped, err := DecodeUsers(resp.Body)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		c.logger.Warn("skipped malformed records", "source", c.endpoint.Redacted(), "skipped", skipped)
	}
	return users, nil
}

// FileSource reads the directory from a local JSON file.
type FileSource struct {
	path   string
	logger *log.Logger
}

// NewFileSource builds a FileSource for path.
func NewFileSource(path string, logger *log.Logger) *FileSource {
	return &FileSource{path: path, logger: orDiscard(logger)}
}

// Path returns the file the source reads.
func (f *FileSource) Path() string {
	return f.path
}

// FetchUsers reads and decodes the file. The context is checked before reading.
func (f *FileSource) FetchUsers(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open directory file: %w", err)
	}
	defer func() { _ = file.Close() }()

	users, skipped, err := DecodeUsers(file)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		f.logger.Warn("skipped malformed records", "source", f.path, "skipped", skipped)
	}
	return users, nil
}

// NewSource returns the Fetcher matching location: http(s) URLs use Client,
// file:// URLs and bare paths use FileSource.
func NewSource(location string, timeout time.Duration, logger *log.Logger) (Fetcher, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, ErrEmptyLocation
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return NewClient(trimmed, timeout, logger)
	case strings.HasPrefix(lower, "file://"):
		u, err := url.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse data location %q: %w", location, err)
		}
		return NewFileSource(filepath.FromSlash(u.Path), logger), nil
	case strings.Contains(trimmed, "://"):
		return nil, fmt.Errorf("unsupported data location scheme: %q", location)
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return nil, fmt.Errorf("resolve data path: %w", err)
	}
	return NewFileSource(abs, logger), nil
}

func parseEndpoint(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, ErrEmptyLocation
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse data url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("data url %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("data url %q: missing host", rawURL)
	}
	u.Fragment = ""
	return u, nil
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}
