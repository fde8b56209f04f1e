package executor_test

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jrsteele09/ainote-client/apierrors"
	"github.com/jrsteele09/ainote-client/executor"
	"github.com/jrsteele09/ainote-client/internal/utils"
	"github.com/jrsteele09/ainote-client/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

// testBackend answers every request with a fixed status and body and keeps
// what it received.
type testBackend struct {
	lock     sync.Mutex
	status   int
	body     string
	requests []recorded
	server   *httptest.Server
}

func newTestBackend(t *testing.T, status int, body string) *testBackend {
	b := &testBackend{status: status, body: body}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		b.lock.Lock()
		b.requests = append(b.requests, recorded{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   raw,
		})
		status, body := b.status, b.body
		b.lock.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *testBackend) last(t *testing.T) recorded {
	b.lock.Lock()
	defer b.lock.Unlock()
	require.NotEmpty(t, b.requests)
	return b.requests[len(b.requests)-1]
}

func (b *testBackend) count() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return len(b.requests)
}

func loggedInStore(t *testing.T) *session.PersistentStore {
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(session.Update{
		Token:    utils.Ptr("tok-123"),
		UserID:   utils.Ptr("u-1"),
		Role:     utils.Ptr(session.RoleUser),
		TenantID: utils.Ptr("tenant-9"),
	}))
	return store
}

func newExecutor(t *testing.T, b *testBackend, store session.Store, opts ...executor.Option) *executor.HTTPExecutor {
	e, err := executor.NewHTTPExecutor(b.server.URL+"/", store, opts...)
	require.NoError(t, err)
	return e
}

func TestNewHTTPExecutor_Validation(t *testing.T) {
	_, err := executor.NewHTTPExecutor("http://localhost", nil)
	require.Error(t, err)

	_, err = executor.NewHTTPExecutor("ftp://localhost", session.NewMemoryStore())
	require.Error(t, err)

	e, err := executor.NewHTTPExecutor("http://localhost:8080//", session.NewMemoryStore())
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", e.BaseURL())
}

func TestExecute_QueryEncoding(t *testing.T) {
	b := newTestBackend(t, http.StatusOK, `{}`)
	e := newExecutor(t, b, session.NewMemoryStore())

	var keyword *string
	query := executor.Query{}.
		Add("keyword", keyword).
		Add("status", "ACTIVE").
		Add("enabled", false).
		Add("pageIndex", 0).
		Add("note", "a b&c/é")

	_, err := e.Execute(context.Background(), &executor.Request{Path: "/account/page", Method: executor.MethodGet, Query: query})
	require.NoError(t, err)

	got := b.last(t)
	require.Equal(t, "/account/page", got.path)
	require.Equal(t, "status=ACTIVE&enabled=false&pageIndex=0&note=a%20b%26c%2F%C3%A9", got.query)
}

func TestExecute_InjectsSessionHeaders(t *testing.T) {
	b := newTestBackend(t, http.StatusOK, `"ok"`)

	t.Run("token and tenant", func(t *testing.T) {
		e := newExecutor(t, b, loggedInStore(t))
		_, err := e.Execute(context.Background(), &executor.Request{
			Path:   "/company/my",
			Method: executor.MethodGet,
			Header: http.Header{"Authorization": {"Bearer stale"}, "X-Trace": {"abc"}},
		})
		require.NoError(t, err)

		got := b.last(t)
		require.Equal(t, "Bearer tok-123", got.header.Get("Authorization"))
		require.Equal(t, "tenant-9", got.header.Get("tenant"))
		require.Equal(t, "application/json", got.header.Get("Content-Type"))
		require.Equal(t, "abc", got.header.Get("X-Trace"))
		require.NotEmpty(t, got.header.Get(executor.RequestIDHeader))
	})

	t.Run("token without tenant", func(t *testing.T) {
		store := loggedInStore(t)
		require.NoError(t, store.Set(session.Update{TenantID: utils.Ptr("")}))
		e := newExecutor(t, b, store, executor.WithHeader("X-Client", "cli"))

		_, err := e.Execute(context.Background(), &executor.Request{Path: "/company/my", Method: executor.MethodGet})
		require.NoError(t, err)

		got := b.last(t)
		require.Equal(t, "Bearer tok-123", got.header.Get("Authorization"))
		require.Empty(t, got.header.Values("tenant"))
		require.Equal(t, "cli", got.header.Get("X-Client"))
	})

	t.Run("custom tenant header", func(t *testing.T) {
		e := newExecutor(t, b, loggedInStore(t), executor.WithTenantHeader("X-Tenant-Id"))
		_, err := e.Execute(context.Background(), &executor.Request{Path: "/company/my", Method: executor.MethodGet})
		require.NoError(t, err)
		require.Equal(t, "tenant-9", b.last(t).header.Get("X-Tenant-Id"))
	})

	t.Run("anonymous", func(t *testing.T) {
		e := newExecutor(t, b, session.NewMemoryStore())
		_, err := e.Execute(context.Background(), &executor.Request{Path: "/auth/captcha", Method: executor.MethodGet})
		require.NoError(t, err)
		require.Empty(t, b.last(t).header.Values("Authorization"))
	})
}

func TestExecute_SuccessBody(t *testing.T) {
	b := newTestBackend(t, http.StatusOK, `{"id":"1","extra":[1,2]}`)
	e := newExecutor(t, b, session.NewMemoryStore())

	raw, err := e.Execute(context.Background(), &executor.Request{
		Path:   "/company/add",
		Method: executor.MethodPost,
		Body:   map[string]string{"name": "Acme"},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"1","extra":[1,2]}`, string(raw))
	require.JSONEq(t, `{"name":"Acme"}`, string(b.last(t).body))

	b.lock.Lock()
	b.status, b.body = http.StatusNoContent, ""
	b.lock.Unlock()
	raw, err = e.Execute(context.Background(), &executor.Request{Path: "/log/1", Method: executor.MethodDelete})
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestExecute_UnauthorizedClearsSession(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "401 with empty body", status: http.StatusUnauthorized, body: ""},
		{name: "401 with structured body", status: http.StatusUnauthorized, body: `{"family":"ACCOUNT","code":"UNAUTHORIZED"}`},
		{name: "UNAUTHORIZED code on another status", status: http.StatusForbidden, body: `{"family":"ACCOUNT","code":"UNAUTHORIZED","message":"token revoked"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackend(t, tt.status, tt.body)
			store := loggedInStore(t)

			var signalled *executor.SessionExpiredError
			e := newExecutor(t, b, store, executor.WithSessionExpiredHandler(func(_ context.Context, err *executor.SessionExpiredError) {
				signalled = err
			}))

			_, err := e.Execute(context.Background(), &executor.Request{Path: "/account/me", Method: executor.MethodGet})
			require.Error(t, err)
			require.True(t, executor.IsSessionExpired(err))
			require.True(t, errors.Is(err, executor.ErrSessionExpired))
			require.Equal(t, tt.status, executor.StatusOf(err))
			require.NotNil(t, signalled)
			require.True(t, store.Get().IsEmpty())

			_, isAPIError := apierrors.As(err)
			require.False(t, isAPIError)
		})
	}
}

func TestExecute_StructuredError(t *testing.T) {
	b := newTestBackend(t, http.StatusBadRequest, `{"family":"ACCOUNT","code":"PASSWORD_IS_ERROR","message":"bad password","field":"password"}`)
	store := loggedInStore(t)
	e := newExecutor(t, b, store)

	_, err := e.Execute(context.Background(), &executor.Request{Path: "/auth/login", Method: executor.MethodPost, Body: map[string]string{}})
	apiErr, ok := apierrors.As(err)
	require.True(t, ok)
	require.Equal(t, apierrors.FamilyAccount, apiErr.Family)
	require.Equal(t, apierrors.CodePasswordIsError, apiErr.Code)
	require.Equal(t, "密码错误", apiErr.Message)
	require.Equal(t, "bad password", apiErr.ServerMessage)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.JSONEq(t, `"password"`, string(apiErr.Extra["field"]))
	require.True(t, store.HasToken())
	require.True(t, apierrors.AccountErrors.Contains(err))
}

func TestExecute_UnparseableError(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "html", body: "<html>bad gateway</html>"},
		{name: "json without code", body: `{"message":"upstream down"}`, message: "upstream down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackend(t, http.StatusBadGateway, tt.body)
			e := newExecutor(t, b, loggedInStore(t))

			_, err := e.Execute(context.Background(), &executor.Request{Path: "/file", Method: executor.MethodGet})
			var transportErr *executor.TransportError
			require.ErrorAs(t, err, &transportErr)
			require.Equal(t, http.StatusBadGateway, transportErr.Status)
			require.Equal(t, tt.message, transportErr.Message)
			require.ErrorIs(t, err, executor.ErrTransport)

			_, isAPIError := apierrors.As(err)
			require.False(t, isAPIError)
		})
	}
}

func TestExecute_NetworkFailure(t *testing.T) {
	b := newTestBackend(t, http.StatusOK, "")
	e := newExecutor(t, b, session.NewMemoryStore())
	b.server.Close()

	_, err := e.Execute(context.Background(), &executor.Request{Path: "/file", Method: executor.MethodGet})
	var transportErr *executor.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Zero(t, transportErr.Status)
	require.Error(t, transportErr.Err)
	require.Zero(t, executor.StatusOf(err))
}

func TestExecute_TimeoutAppliesToCustomClient(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(slow.Close)

	orders := map[string][]executor.Option{
		"timeout then client": {executor.WithTimeout(50 * time.Millisecond), executor.WithHTTPClient(&http.Client{})},
		"client then timeout": {executor.WithHTTPClient(&http.Client{}), executor.WithTimeout(50 * time.Millisecond)},
	}
	for name, options := range orders {
		t.Run(name, func(t *testing.T) {
			e, err := executor.NewHTTPExecutor(slow.URL, session.NewMemoryStore(), options...)
			require.NoError(t, err)

			_, err = e.Execute(context.Background(), &executor.Request{Path: "/file", Method: executor.MethodGet})
			var transportErr *executor.TransportError
			require.ErrorAs(t, err, &transportErr)
			require.Zero(t, transportErr.Status)
		})
	}
}

func TestExecute_InvalidRequestNotDispatched(t *testing.T) {
	b := newTestBackend(t, http.StatusOK, "")
	e := newExecutor(t, b, session.NewMemoryStore())

	tests := []struct {
		name string
		req  *executor.Request
	}{
		{name: "nil", req: nil},
		{name: "bad method", req: &executor.Request{Path: "/x", Method: "FETCH"}},
		{name: "relative path", req: &executor.Request{Path: "x", Method: executor.MethodGet}},
		{name: "body and file", req: &executor.Request{
			Path:   "/file/upload",
			Method: executor.MethodPost,
			Body:   map[string]string{"a": "b"},
			File:   &executor.FilePart{FileName: "a.txt", Content: strings.NewReader("x")},
		}},
		{name: "file without content", req: &executor.Request{Path: "/file/upload", Method: executor.MethodPost, File: &executor.FilePart{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, executor.ErrInvalidRequest)
		})
	}
	require.Zero(t, b.count())
}

func TestExecute_MultipartUpload(t *testing.T) {
	b := newTestBackend(t, http.StatusOK, `{"id":"f-1","fileName":"a.png"}`)
	e := newExecutor(t, b, loggedInStore(t))

	raw, err := e.Execute(context.Background(), &executor.Request{
		Path:   "/file/upload",
		Method: executor.MethodPost,
		Query:  executor.Query{}.Add("folder", "avatars"),
		File:   &executor.FilePart{FileName: "a.png", ContentType: "image/png", Content: strings.NewReader("PNGDATA")},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"f-1","fileName":"a.png"}`, string(raw))

	got := b.last(t)
	require.Equal(t, "folder=avatars", got.query)
	require.Equal(t, "Bearer tok-123", got.header.Get("Authorization"))

	mediaType, params, err := mime.ParseMediaType(got.header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(strings.NewReader(string(got.body)), params["boundary"])
	part, err := reader.NextPart()
	require.NoError(t, err)
	require.Equal(t, "file", part.FormName())
	require.Equal(t, "a.png", part.FileName())
	require.Equal(t, "image/png", part.Header.Get("Content-Type"))
	content, err := io.ReadAll(part)
	require.NoError(t, err)
	require.Equal(t, "PNGDATA", string(content))

	_, err = reader.NextPart()
	require.ErrorIs(t, err, io.EOF)
}

func TestExecute_Metrics(t *testing.T) {
	b := newTestBackend(t, http.StatusOK, `{}`)
	registry := prometheus.NewRegistry()
	metrics, err := executor.NewMetrics(registry)
	require.NoError(t, err)
	e := newExecutor(t, b, session.NewMemoryStore(), executor.WithMetrics(metrics))

	for range 2 {
		_, err := e.Execute(context.Background(), &executor.Request{Path: "/log", Method: executor.MethodGet})
		require.NoError(t, err)
	}
	b.lock.Lock()
	b.status, b.body = http.StatusInternalServerError, "oops"
	b.lock.Unlock()
	_, err = e.Execute(context.Background(), &executor.Request{Path: "/log", Method: executor.MethodGet})
	require.Error(t, err)

	require.Equal(t, 2.0, testutil.ToFloat64(metrics.Requests().WithLabelValues("GET", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests().WithLabelValues("GET", "http_error")))

	_, err = executor.NewMetrics(registry)
	require.Error(t, err)
}

func TestExecute_ConcurrentCallsAreIndependent(t *testing.T) {
	b := newTestBackend(t, http.StatusOK, `[]`)
	e := newExecutor(t, b, loggedInStore(t))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Execute(context.Background(), &executor.Request{Path: "/company/names", Method: executor.MethodGet})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	require.Equal(t, 10, b.count())
}
