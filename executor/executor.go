package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/ainote-client/apierrors"
	clienterrors "github.com/jrsteele09/ainote-client/internal/errors"
	"github.com/jrsteele09/ainote-client/session"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	DefaultTenantHeader = "tenant"
	RequestIDHeader     = "X-Request-Id"
)

// Executor performs one backend call and returns the raw 2xx body.
type Executor interface {
	Execute(ctx context.Context, req *Request) (json.RawMessage, error)
}

// SessionExpiredHandler is notified after the store has been cleared.
type SessionExpiredHandler func(ctx context.Context, err *SessionExpiredError)

var _ Executor = (*HTTPExecutor)(nil)

// HTTPExecutor is the single HTTP transport shared by every facade.
type HTTPExecutor struct {
	baseURL      string
	store        session.Store
	client       *http.Client
	timeout      time.Duration
	log          zerolog.Logger
	tenantHeader string
	header       http.Header
	metrics      *Metrics
	onExpired    SessionExpiredHandler
	nowTime      func() time.Time
}

// Option configures an HTTPExecutor.
type Option func(*HTTPExecutor)

func WithHTTPClient(client *http.Client) Option {
	return func(e *HTTPExecutor) {
		if client != nil {
			e.client = client
		}
	}
}

// WithTimeout bounds every call, uploads included. It applies to the
// client given by WithHTTPClient whatever the option order.
func WithTimeout(timeout time.Duration) Option {
	return func(e *HTTPExecutor) {
		e.timeout = timeout
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(e *HTTPExecutor) {
		e.log = log
	}
}

// WithTenantHeader changes the header used to carry the tenant id.
func WithTenantHeader(name string) Option {
	return func(e *HTTPExecutor) {
		if name != "" {
			e.tenantHeader = name
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(e *HTTPExecutor) {
		e.metrics = m
	}
}

// WithSessionExpiredHandler registers the reauthenticate listener.
func WithSessionExpiredHandler(h SessionExpiredHandler) Option {
	return func(e *HTTPExecutor) {
		e.onExpired = h
	}
}

// WithHeader adds a static header to every request. Injected headers
// (authorization, tenant, content type) still take precedence.
func WithHeader(key, value string) Option {
	return func(e *HTTPExecutor) {
		e.header.Add(key, value)
	}
}

// WithNowTime sets the clock used for latency measurement (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(e *HTTPExecutor) {
		e.nowTime = nowFunc
	}
}

// NewHTTPExecutor creates the transport for baseURL, reading credentials
// from store on every call.
func NewHTTPExecutor(baseURL string, store session.Store, options ...Option) (*HTTPExecutor, error) {
	if store == nil {
		return nil, errors.New("[NewHTTPExecutor] session store is required")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "[NewHTTPExecutor] invalid base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("[NewHTTPExecutor] base url %q must be http or https", baseURL)
	}

	e := &HTTPExecutor{
		baseURL:      baseURL,
		store:        store,
		client:       &http.Client{},
		log:          zerolog.Nop(),
		tenantHeader: DefaultTenantHeader,
		header:       make(http.Header),
		nowTime:      time.Now,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.timeout > 0 {
		c := *e.client
		c.Timeout = e.timeout
		e.client = &c
	}
	return e, nil
}

// BaseURL returns the normalised base URL.
func (e *HTTPExecutor) BaseURL() string {
	return e.baseURL
}

// Execute dispatches req exactly once.
func (e *HTTPExecutor) Execute(ctx context.Context, req *Request) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	httpReq, requestID, err := e.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := e.nowTime()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		e.metrics.observe(req.Method, outcomeNetworkError, e.nowTime().Sub(start))
		e.log.Debug().Err(err).Str("request_id", requestID).Str("method", string(req.Method)).
			Str("path", req.Path).Msg("api call failed")
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := e.nowTime().Sub(start)
	if err != nil {
		e.metrics.observe(req.Method, outcomeNetworkError, elapsed)
		return nil, &TransportError{Method: req.Method, Path: req.Path, Status: resp.StatusCode, Err: err}
	}

	e.log.Debug().
		Str("request_id", requestID).
		Str("method", string(req.Method)).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("api call")

	result, outcome, err := e.interpret(ctx, req, resp.StatusCode, body)
	e.metrics.observe(req.Method, outcome, elapsed)
	return result, err
}

func (e *HTTPExecutor) newHTTPRequest(ctx context.Context, req *Request) (*http.Request, string, error) {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), e.baseURL+req.URI(), body)
	if err != nil {
		return nil, "", clienterrors.Wrapf(clienterrors.ErrInvalidRequest, "build %s: %v", req, err)
	}

	for key, values := range e.header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	for key, values := range req.Header {
		httpReq.Header.Del(key)
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	requestID := httpReq.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		httpReq.Header.Set(RequestIDHeader, requestID)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", contentType)

	current := e.store.Get()
	if token := current.OAuth2Token(); token != nil {
		token.SetAuthHeader(httpReq)
	}
	if current.HasTenant() {
		httpReq.Header.Set(e.tenantHeader, current.TenantID)
	}
	return httpReq, requestID, nil
}

// interpret maps a response onto a result or one of the three error kinds.
func (e *HTTPExecutor) interpret(ctx context.Context, req *Request, status int, body []byte) (json.RawMessage, string, error) {
	if status == http.StatusUnauthorized {
		apiErr, _ := apierrors.FromBody(status, body)
		return nil, outcomeSessionExpired, e.expire(ctx, req, status, apiErr)
	}

	if status >= 200 && status < 300 {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, outcomeSuccess, nil
		}
		return json.RawMessage(body), outcomeSuccess, nil
	}

	if apiErr, ok := apierrors.FromBody(status, body); ok {
		if apierrors.IsAuthorizationDenied(apiErr.Code) {
			return nil, outcomeSessionExpired, e.expire(ctx, req, status, apiErr)
		}
		return nil, outcomeAPIError, apiErr
	}

	return nil, outcomeHTTPError, &TransportError{
		Method:  req.Method,
		Path:    req.Path,
		Status:  status,
		Message: apierrors.ServerMessageOf(body),
	}
}

func (e *HTTPExecutor) expire(ctx context.Context, req *Request, status int, cause *apierrors.Error) error {
	if err := e.store.Clear(); err != nil {
		e.log.Error().Err(err).Msg("failed to clear session after authorization failure")
	}
	expired := &SessionExpiredError{Method: req.Method, Path: req.Path, Status: status, Cause: cause}
	e.log.Warn().Str("method", string(req.Method)).Str("path", req.Path).Int("status", status).
		Msg("session expired, credentials cleared")
	if e.onExpired != nil {
		e.onExpired(ctx, expired)
	}
	return expired
}
