package apiclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrorCode classifies a failed backend call by HTTP status.
type ErrorCode string

const (
	ErrCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeConflict         ErrorCode = "CONFLICT"
	ErrCodeRateLimited      ErrorCode = "RATE_LIMITED"
	ErrCodeServerError      ErrorCode = "SERVER_ERROR"
	ErrCodeUnexpectedStatus ErrorCode = "UNEXPECTED_STATUS"
)

const (
	unknownStatusText = "Unknown error"
	maxErrorDetails   = 2048
)

// APIError is returned for every non-2xx response. Error() is exactly the
// resolved human-readable message.
type APIError struct {
	Code       ErrorCode `json:"code"`
	Operation  string    `json:"operation"`
	StatusCode int       `json:"statusCode"`
	Status     string    `json:"status,omitempty"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	RequestID  string    `json:"requestId,omitempty"`
	Retryable  bool      `json:"retryable"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(operation, failure string, resp *http.Response, body []byte, requestID string) *APIError {
	statusText := statusTextOf(resp)
	details := string(body)
	if len(details) > maxErrorDetails {
		details = details[:maxErrorDetails]
	}
	return &APIError{
		Code:       codeForStatus(resp.StatusCode),
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Status:     statusText,
		Message:    resolveMessage(failure, statusText, body),
		Details:    details,
		RequestID:  requestID,
		Retryable:  resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests,
		Timestamp:  time.Now().UTC(),
	}
}

// resolveMessage picks the failure message:
//   - JSON body with a non-empty "message" (or "error") string: that string
//   - any other JSON body: the fixed default
//   - non-JSON body: "<default>: <status text>", or "<default>: Unknown error"
func resolveMessage(failure, statusText string, body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		var anyJSON interface{}
		if len(body) > 0 && json.Unmarshal(body, &anyJSON) == nil {
			return failure
		}
		if statusText == "" {
			statusText = unknownStatusText
		}
		return failure + ": " + statusText
	}
	for _, key := range []string{"message", "error"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
	}
	return failure
}

// statusTextOf strips the numeric code from resp.Status ("401 Unauthorized" -> "Unauthorized").
func statusTextOf(resp *http.Response) string {
	text := strings.TrimSpace(resp.Status)
	text = strings.TrimSpace(strings.TrimPrefix(text, strconv.Itoa(resp.StatusCode)))
	return text
}

func codeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return ErrCodeBadRequest
	case status == http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case status == http.StatusForbidden:
		return ErrCodeForbidden
	case status == http.StatusNotFound:
		return ErrCodeNotFound
	case status == http.StatusConflict:
		return ErrCodeConflict
	case status == http.StatusTooManyRequests:
		return ErrCodeRateLimited
	case status >= 500:
		return ErrCodeServerError
	default:
		return ErrCodeUnexpectedStatus
	}
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func hasCode(err error, code ErrorCode) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == code
}

func IsUnauthorized(err error) bool { return hasCode(err, ErrCodeUnauthorized) }
func IsForbidden(err error) bool    { return hasCode(err, ErrCodeForbidden) }
func IsNotFound(err error) bool     { return hasCode(err, ErrCodeNotFound) }
