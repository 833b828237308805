package zoho

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	httpclient "github.com/primrose-mcp/primrose-mcp-zoho/pkg/http"
	"go.uber.org/zap"
)

// RetryPolicy configures NewRetryExecutor. Zero durations take defaults.
type RetryPolicy struct {
	MaxTries        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsed      time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxTries == 0 {
		p.MaxTries = 3
	}
	if p.InitialInterval == 0 {
		p.InitialInterval = 500 * time.Millisecond
	}
	if p.MaxInterval == 0 {
		p.MaxInterval = 10 * time.Second
	}
	if p.MaxElapsed == 0 {
		p.MaxElapsed = time.Minute
	}
	return p
}

type retryExecutor struct {
	next   Executor
	policy RetryPolicy
	logger *zap.Logger
}

// NewRetryExecutor retries rate limits, transient transport failures and 5xx
// responses with exponential backoff. A rate limit waits for the server's
// Retry-After instead. POST and PATCH are retried on rate limits only, since
// the server may have applied a request that failed later. Other errors are
// returned at once.
func NewRetryExecutor(next Executor, policy RetryPolicy, logger *zap.Logger) Executor {
	return &retryExecutor{
		next:   next,
		policy: policy.withDefaults(),
		logger: logger,
	}
}

func (r *retryExecutor) Execute(ctx context.Context, req *Request) (*httpclient.Response, error) {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = r.policy.InitialInterval
	expBackoff.MaxInterval = r.policy.MaxInterval
	expBackoff.Reset()

	// lastErr keeps the typed error when backoff only sees a RetryAfterError.
	var lastErr error
	operation := func() (*httpclient.Response, error) {
		resp, err := r.next.Execute(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == CodeRateLimitExceeded {
			return nil, backoff.RetryAfter(apiErr.RetryAfter)
		}
		if idempotent(req.Method) && shouldRetry(err) {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	notify := func(err error, wait time.Duration) {
		r.logger.Warn("CRM request failed, will retry",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Duration("wait", wait),
			zap.Error(lastErr))
	}

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(r.policy.MaxTries),
		backoff.WithMaxElapsedTime(r.policy.MaxElapsed),
		backoff.WithNotify(notify),
	)
	var retryAfter *backoff.RetryAfterError
	if errors.As(err, &retryAfter) {
		return nil, lastErr
	}
	return resp, err
}

func idempotent(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

func shouldRetry(err error) bool {
	if IsRetryable(err) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}
