package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	httpclient "github.com/primrose-mcp/primrose-mcp-zoho/pkg/http"
	"go.uber.org/zap"
)

// Request is one call against the CRM REST API. Path is relative to the
// tenant's API domain, e.g. "/crm/v6/Contacts".
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Executor performs a Request. Implementations return a typed *APIError for
// any non-2xx outcome.
type Executor interface {
	Execute(ctx context.Context, req *Request) (*httpclient.Response, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, req *Request) (*httpclient.Response, error)

func (f ExecutorFunc) Execute(ctx context.Context, req *Request) (*httpclient.Response, error) {
	return f(ctx, req)
}

// Middleware wraps an Executor.
type Middleware func(Executor) Executor

type tokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// requestExecutor issues exactly one HTTP call per Execute.
type requestExecutor struct {
	baseURL    string
	tokens     tokenSource
	httpClient *httpclient.Client
	logger     *zap.Logger
}

func (e *requestExecutor) Execute(ctx context.Context, req *Request) (*httpclient.Response, error) {
	token, err := e.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	fullURL, err := httpclient.BuildURL(e.baseURL, req.Path, req.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to build request URL: %w", err)
	}

	headers := map[string]string{
		"Authorization": "Zoho-oauthtoken " + token,
		"Content-Type":  "application/json",
	}
	for k, v := range req.Headers {
		headers[k] = v
	}

	resp, err := e.httpClient.Do(httpclient.RequestOptions{
		Method:  req.Method,
		URL:     fullURL,
		Headers: headers,
		Body:    req.Body,
		Context: ctx,
	})
	if err != nil {
		return nil, err
	}

	if err := classify(resp); err != nil {
		e.logger.Warn("CRM request failed",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err))
		return nil, err
	}

	return resp, nil
}

// classify maps a response status to the error taxonomy. A nil return means
// the body may be decoded.
func classify(resp *httpclient.Response) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, err := strconv.Atoi(resp.Headers.Get("Retry-After"))
		if err != nil {
			retryAfter = defaultRetryAfter
		}
		return NewRateLimitError("Rate limit exceeded", retryAfter)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return NewAuthenticationError("Authentication failed. Check your OAuth credentials.")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return NewAPIError(errorMessage(resp), resp.StatusCode)
	}
	return nil
}

func errorMessage(resp *httpclient.Response) string {
	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body, &body); err == nil {
		for _, key := range []string{"message", "error", "code"} {
			if s, ok := body[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("API error: %d", resp.StatusCode)
}
