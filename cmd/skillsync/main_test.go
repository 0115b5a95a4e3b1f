package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillsync-client/internal/common/logger"
	"skillsync-client/internal/session"
)

type seenRequest struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

// fakeBackend serves canned JSON per "METHOD /path" and records every call.
type fakeBackend struct {
	mu        sync.Mutex
	seen      []seenRequest
	responses map[string]string
	server    *httptest.Server
}

func newFakeBackend(t *testing.T, responses map[string]string) *fakeBackend {
	t.Helper()
	b := &fakeBackend{responses: responses}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.seen = append(b.seen, seenRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			body:   string(body),
		})
		b.mu.Unlock()

		resp, ok := responses[r.Method+" "+r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"no such route"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, resp)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) last(t *testing.T) seenRequest {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.seen)
	return b.seen[len(b.seen)-1]
}

func newTestApp(t *testing.T, store session.Store) *app {
	t.Helper()
	t.Setenv("SKILLSYNC_SESSION_BACKEND", "memory")
	return &app{
		store: store,
		log:   logger.NewTestLogger(t),
	}
}

// run executes the CLI once with args and returns stdout.
func run(t *testing.T, a *app, backend *fakeBackend, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(a)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--base-url", backend.server.URL, "--output", "json"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice",
		"role": "ROLE_USER",
		"exp":  exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func TestLoginStoresTokenAndLogoutClears(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	backend := newFakeBackend(t, map[string]string{
		"POST /api/auth/login": `{"token":"` + token + `","role":"ROLE_USER"}`,
		"GET /api/profile":     `{"id":1,"username":"alice","email":"alice@example.com","role":"ROLE_USER"}`,
	})
	store := session.NewMemoryStore()
	ctx := context.Background()

	out, err := run(t, newTestApp(t, store), backend, "login", "-u", "alice", "-p", "pw")
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","role":"ROLE_USER"}`, out)
	assert.JSONEq(t, `{"username":"alice","password":"pw"}`, backend.last(t).body)

	stored, err := session.Token(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, token, stored)

	out, err = run(t, newTestApp(t, store), backend, "profile", "get")
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+token, backend.last(t).auth)
	assert.Contains(t, out, `"username":"alice"`)

	out, err = run(t, newTestApp(t, store), backend, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, `"subject":"alice"`)

	_, err = run(t, newTestApp(t, store), backend, "logout")
	require.NoError(t, err)
	stored, err = session.Token(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRequiresLogin(t *testing.T) {
	backend := newFakeBackend(t, map[string]string{})

	_, err := run(t, newTestApp(t, session.NewMemoryStore()), backend, "favorites", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Empty(t, backend.seen)
}

func TestJobsListAnonymousWithFilters(t *testing.T) {
	backend := newFakeBackend(t, map[string]string{
		"GET /api/jobs": `[{"id":1,"title":"Go Dev","skills":["go"]}]`,
	})

	out, err := run(t, newTestApp(t, session.NewMemoryStore()), backend,
		"jobs", "list", "--keyword", "go", "--min-salary", "0")
	require.NoError(t, err)

	req := backend.last(t)
	assert.Empty(t, req.auth)
	assert.Equal(t, "keyword=go&minSalary=0", req.query)
	assert.Contains(t, out, `"title":"Go Dev"`)
}

func TestJobsCreateValidatesDocument(t *testing.T) {
	backend := newFakeBackend(t, map[string]string{
		"POST /api/jobs": `{"id":9,"title":"SRE","recruiterId":2}`,
	})
	store := session.NewMemoryStore()
	require.NoError(t, session.Save(context.Background(), store, "tok", "ROLE_RECRUITER"))

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"company":"Acme"}`), 0o600))

	_, err := run(t, newTestApp(t, store), backend, "jobs", "create", "-f", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document")
	assert.Empty(t, backend.seen, "invalid documents are not sent")

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"title":"SRE","skills":["k8s"],"salary":100000}`), 0o600))

	out, err := run(t, newTestApp(t, store), backend, "jobs", "create", "-f", good)
	require.NoError(t, err)
	req := backend.last(t)
	assert.Equal(t, "Bearer tok", req.auth)
	assert.JSONEq(t, `{"title":"SRE","skills":["k8s"],"salary":100000}`, req.body)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, float64(9), created["id"])
}

func TestAdminUsersListDefaults(t *testing.T) {
	backend := newFakeBackend(t, map[string]string{
		"GET /api/admin/users": `{"content":[],"page":0,"size":10,"totalElements":0,"totalPages":0}`,
	})
	store := session.NewMemoryStore()
	require.NoError(t, session.Save(context.Background(), store, "admin-tok", "ROLE_ADMIN"))

	_, err := run(t, newTestApp(t, store), backend, "admin", "users", "list")
	require.NoError(t, err)
	assert.Equal(t, "page=0&size=10", backend.last(t).query)

	_, err = run(t, newTestApp(t, store), backend, "admin", "users", "list", "--page", "3", "--size", "50")
	require.NoError(t, err)
	assert.Equal(t, "page=3&size=50", backend.last(t).query)
}

func TestBackendErrorIsReported(t *testing.T) {
	backend := newFakeBackend(t, map[string]string{})
	store := session.NewMemoryStore()
	require.NoError(t, session.Save(context.Background(), store, "tok", ""))

	_, err := run(t, newTestApp(t, store), backend, "applications", "apply", "7")
	require.Error(t, err)
	assert.Equal(t, "no such route", err.Error())
	assert.Equal(t, "/api/applications/apply/7", backend.last(t).path)
}

func TestInvalidArguments(t *testing.T) {
	backend := newFakeBackend(t, map[string]string{})
	store := session.NewMemoryStore()
	require.NoError(t, session.Save(context.Background(), store, "tok", ""))

	_, err := run(t, newTestApp(t, store), backend, "resume", "get", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid resume id")

	_, err = run(t, newTestApp(t, store), backend, "--output", "xml", "jobs", "fetch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}

func TestResumeUploadAndMetricsFile(t *testing.T) {
	backend := newFakeBackend(t, map[string]string{
		"POST /api/resumes/upload": `{"id":4,"skills":["go"]}`,
	})
	dir := t.TempDir()
	cv := filepath.Join(dir, "cv.txt")
	require.NoError(t, os.WriteFile(cv, []byte("Go developer"), 0o600))
	metricsPath := filepath.Join(dir, "client.prom")

	out, err := run(t, newTestApp(t, session.NewMemoryStore()), backend,
		"--metrics-file", metricsPath, "resume", "upload", cv)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"skills":["go"]}`, out)
	assert.Empty(t, backend.last(t).auth)
	assert.True(t, strings.Contains(backend.last(t).body, "Go developer"))

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `skillsync_client_requests_total{operation="uploadResume",status="200"}`)
}

func TestExpiredTokenStillSent(t *testing.T) {
	expired := signedToken(t, time.Now().Add(-time.Hour))
	backend := newFakeBackend(t, map[string]string{
		"GET /api/favorites": `[]`,
	})
	store := session.NewMemoryStore()
	require.NoError(t, session.Save(context.Background(), store, expired, "ROLE_USER"))

	out, err := run(t, newTestApp(t, store), backend, "favorites", "list")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
	assert.Equal(t, "Bearer "+expired, backend.last(t).auth)
}
