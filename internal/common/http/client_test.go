package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestClient_Do_StampsHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClient(5*time.Second, WithUserAgent("skillsync/test"))
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "skillsync/test", got.Get("User-Agent"))
	_, parseErr := uuid.Parse(got.Get(HeaderRequestID))
	assert.NoError(t, parseErr)
	assert.Equal(t, got.Get(HeaderRequestID), RequestID(req))
}

func TestClient_Do_KeepsCallerRequestID(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(HeaderRequestID)
	}))
	defer server.Close()

	c := NewClient(0)
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set(HeaderRequestID, "fixed-id")

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "fixed-id", got)
}

func TestClient_DoWithContext_PropagatesTraceparent(t *testing.T) {
	prevProp := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prevProp) })

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var traceparent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("traceparent")
	}))
	defer server.Close()

	ctx, span := tp.Tracer("test").Start(context.Background(), "parent")
	defer span.End()

	c := NewClient(time.Second)
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	resp, err := c.DoWithContext(ctx, req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Contains(t, traceparent, span.SpanContext().TraceID().String())
}

type stubDoer struct {
	calls int
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.calls++
	return &http.Response{StatusCode: http.StatusTeapot, Body: http.NoBody, Request: req}, nil
}

func TestClient_WithDoer(t *testing.T) {
	d := &stubDoer{}
	c := NewClient(time.Second, WithDoer(d))
	req, _ := http.NewRequest(http.MethodGet, "http://unused.invalid/", nil)

	resp, err := c.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, 1, d.calls)
}
