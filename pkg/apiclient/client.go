// Package apiclient is a typed client for the SkillSync job-matching backend.
//
// Every operation maps to one HTTP request. Operations that require a session
// take the bearer token explicitly; the client itself holds no session state
// and is safe for concurrent use.
package apiclient

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	commonhttp "skillsync-client/internal/common/http"
	"skillsync-client/internal/common/logger"
)

const (
	DefaultBaseURL   = "http://localhost:8081"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "skillsync-client"
)

// Logger matches the structured logger used across the module.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client issues requests against one backend base URL.
type Client struct {
	baseURL   string
	transport *commonhttp.Client
	logger    Logger
}

type options struct {
	timeout   time.Duration
	userAgent string
	doer      commonhttp.Doer
	logger    Logger
}

type Option func(*options)

// WithTimeout bounds each request. Zero disables the client-side deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithHTTPClient replaces the instrumented default transport, e.g. with an
// httptest server client.
func WithHTTPClient(d commonhttp.Doer) Option {
	return func(o *options) { o.doer = d }
}

func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New returns a client for baseURL. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	o := &options{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		logger:    logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}

	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	transportOpts := []commonhttp.Option{commonhttp.WithUserAgent(o.userAgent)}
	if o.doer != nil {
		transportOpts = append(transportOpts, commonhttp.WithDoer(o.doer))
	}

	return &Client{
		baseURL:   base,
		transport: commonhttp.NewClient(o.timeout, transportOpts...),
		logger:    o.logger,
	}, nil
}

// BaseURL returns the normalized base URL, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: missing host", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

