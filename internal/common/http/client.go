// internal/common/http/client.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserAgent = "User-Agent"
)

// Doer is the subset of *http.Client the transport needs. Tests swap it out.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	httpClient Doer
	userAgent  string
}

type Option func(*Client)

// WithUserAgent sets the User-Agent sent on every request that does not already carry one.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithDoer replaces the underlying HTTP client.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// NewClient builds a transport with an otelhttp-instrumented round tripper.
// A zero timeout means no client-side deadline beyond the request context.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req as-is after stamping the request id, user agent and trace context.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.prepare(req)
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	return c.Do(req.WithContext(ctx))
}

func (c *Client) prepare(req *http.Request) {
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.New().String())
	}
	if c.userAgent != "" && req.Header.Get(HeaderUserAgent) == "" {
		req.Header.Set(HeaderUserAgent, c.userAgent)
	}
	injectTraceContext(req)
}

// injectTraceContext writes W3C trace headers for the span carried by the request context.
func injectTraceContext(req *http.Request) {
	propagator := otel.GetTextMapPropagator()
	if propagator == nil {
		return
	}
	propagator.Inject(req.Context(), propagation.HeaderCarrier(req.Header))
}

// RequestID returns the id stamped on req, if any.
func RequestID(req *http.Request) string {
	if req == nil {
		return ""
	}
	return req.Header.Get(HeaderRequestID)
}
