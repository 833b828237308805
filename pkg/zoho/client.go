package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	httpclient "github.com/primrose-mcp/primrose-mcp-zoho/pkg/http"
	"go.uber.org/zap"
)

// Client is the Zoho CRM client for one tenant. It owns that tenant's token
// cache and must not be shared across tenants.
type Client struct {
	creds     Credentials
	exec      Executor
	logger    *zap.Logger
	sessionID uuid.UUID
}

type options struct {
	httpClient *http.Client
	tokenURL   string
	now        func() time.Time
	retry      *RetryPolicy
	middleware []Middleware
	sessionID  uuid.UUID
}

// Option customises a Client.
type Option func(*options)

// WithHTTPClient sets the *http.Client used for API and token calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithTokenURL overrides the regional OAuth token endpoint.
func WithTokenURL(tokenURL string) Option {
	return func(o *options) { o.tokenURL = tokenURL }
}

// WithClock sets the time source used for token expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithSessionID fixes the session id instead of generating one.
func WithSessionID(id uuid.UUID) Option {
	return func(o *options) { o.sessionID = id }
}

// WithRetry wraps the executor with NewRetryExecutor.
func WithRetry(policy RetryPolicy) Option {
	return func(o *options) { o.retry = &policy }
}

// WithMiddleware wraps the executor. The first middleware is outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(o *options) { o.middleware = append(o.middleware, mw...) }
}

// New creates a client with a production logger.
func New(creds Credentials, opts ...Option) (*Client, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return NewWithLogger(creds, logger, opts...)
}

// NewWithLogger creates a client that logs to logger.
func NewWithLogger(creds Credentials, logger *zap.Logger, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	sessionID := o.sessionID
	if sessionID == uuid.Nil {
		sessionID = uuid.New()
	}
	logger = logger.With(zap.String("session_id", sessionID.String()))

	hc := httpclient.NewClientWithHTTPClient(o.httpClient, logger)

	tokenURL := o.tokenURL
	if tokenURL == "" {
		tokenURL = TokenURL(creds.baseURL())
	}

	tokens := &tokenManager{
		creds:      creds,
		tokenURL:   tokenURL,
		httpClient: hc,
		cache:      &tokenCache{},
		now:        o.now,
		logger:     logger,
	}

	var exec Executor = &requestExecutor{
		baseURL:    creds.baseURL(),
		tokens:     tokens,
		httpClient: hc,
		logger:     logger,
	}
	if o.retry != nil {
		exec = NewRetryExecutor(exec, *o.retry, logger)
	}
	for i := len(o.middleware) - 1; i >= 0; i-- {
		exec = o.middleware[i](exec)
	}

	return &Client{
		creds:     creds,
		exec:      exec,
		logger:    logger,
		sessionID: sessionID,
	}, nil
}

// SessionID identifies this client instance in logs and audit records.
func (c *Client) SessionID() uuid.UUID {
	return c.sessionID
}

// do executes req and decodes a non-empty body into out. A 204 or empty
// body leaves out untouched.
func (c *Client) do(ctx context.Context, req *Request, out interface{}) error {
	resp, err := c.exec.Execute(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		c.logger.Error("Failed to parse response",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err))
		return fmt.Errorf("failed to parse response from %s %s: %w", req.Method, req.Path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	return c.do(ctx, &Request{Method: http.MethodGet, Path: path, Query: toValues(query)}, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	return c.do(ctx, &Request{Method: method, Path: path, Body: body}, out)
}
