package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	commonhttp "skillsync-client/internal/common/http"
	"skillsync-client/internal/common/logger"
	"skillsync-client/internal/common/metrics"
	"skillsync-client/internal/common/observability"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)

type authMode int

const (
	authNone authMode = iota
	// authRequired always sends "Bearer <token>", even for an empty token.
	authRequired
	// authOptional sends the header only when the token is non-empty.
	authOptional
)

// filePart is a single multipart file field.
type filePart struct {
	field    string
	filename string
	content  io.Reader
}

// operation describes one backend call.
type operation struct {
	name    string
	method  string
	path    string
	query   url.Values
	auth    authMode
	token   string
	body    interface{}
	file    *filePart
	failure string
}

// call performs op and decodes a 2xx body into T. An empty 2xx body yields
// the zero value of T. Transport failures are returned unwrapped.
func call[T any](ctx context.Context, c *Client, op operation) (T, error) {
	var out T

	req, err := c.newRequest(ctx, op)
	if err != nil {
		return out, err
	}
	requestID := commonhttp.RequestID(req)

	ctx, span := observability.StartSpan(req.Context(), "skillsync."+op.name,
		attribute.String("http.request.method", op.method),
		attribute.String("url.path", op.path),
		attribute.String("skillsync.operation", op.name),
	)
	req = req.WithContext(ctx)

	done := metrics.TrackInFlight(op.name)
	defer done()

	fields := map[string]interface{}{
		"operation":  op.name,
		"method":     op.method,
		"path":       op.path,
		"request_id": requestID,
	}
	if op.auth != authNone && op.token != "" {
		fields["token"] = logger.MaskToken(op.token)
	}
	c.logger.Debug("Sending request", fields)

	start := time.Now()
	resp, err := c.transport.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveTransportError(op.name, elapsed)
		observability.EndSpan(span, 0, err)
		fields["error"] = err.Error()
		c.logger.Warn("Request failed before a response was received", fields)
		return out, err
	}
	defer resp.Body.Close()

	metrics.ObserveRequest(op.name, resp.StatusCode, elapsed)
	fields["status"] = resp.StatusCode
	fields["duration_ms"] = elapsed.Milliseconds()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.EndSpan(span, resp.StatusCode, err)
		return out, fmt.Errorf("failed to read %s response: %w", op.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(op.name, op.failure, resp, body, requestID)
		observability.EndSpan(span, resp.StatusCode, apiErr)
		fields["error"] = apiErr.Message
		c.logger.Warn("Backend returned an error", fields)
		return out, apiErr
	}

	if len(bytes.TrimSpace(body)) == 0 {
		observability.EndSpan(span, resp.StatusCode, nil)
		c.logger.Debug("Request completed with empty body", fields)
		return out, nil
	}

	if err := json.Unmarshal(body, &out); err != nil {
		observability.EndSpan(span, resp.StatusCode, err)
		return out, fmt.Errorf("failed to decode %s response: %w", op.name, err)
	}

	observability.EndSpan(span, resp.StatusCode, nil)
	c.logger.Debug("Request completed", fields)
	return out, nil
}

func (c *Client) newRequest(ctx context.Context, op operation) (*http.Request, error) {
	var (
		body        io.Reader
		contentType string
	)

	switch {
	case op.file != nil:
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		part, err := w.CreateFormFile(op.file.field, op.file.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s form: %w", op.name, err)
		}
		if _, err := io.Copy(part, op.file.content); err != nil {
			return nil, fmt.Errorf("failed to read %s file: %w", op.name, err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("failed to build %s form: %w", op.name, err)
		}
		body = buf
		contentType = w.FormDataContentType()
	case op.body != nil:
		payload, err := json.Marshal(op.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", op.name, err)
		}
		body = bytes.NewReader(payload)
		contentType = contentTypeJSON
	}

	req, err := http.NewRequestWithContext(ctx, op.method, c.buildURL(op.path, op.query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", op.name, err)
	}
	if contentType != "" {
		req.Header.Set(headerContentType, contentType)
	}

	switch op.auth {
	case authRequired:
		req.Header.Set(headerAuthorization, "Bearer "+op.token)
	case authOptional:
		if op.token != "" {
			req.Header.Set(headerAuthorization, "Bearer "+op.token)
		}
	}

	// stamp the id now so logs, spans and errors agree on it
	req.Header.Set(commonhttp.HeaderRequestID, uuid.New().String())
	return req, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
