package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Client performs single HTTP exchanges and returns the raw response for any
// status code. Status classification is left to the caller.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

type RequestOptions struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    interface{}
	Context context.Context
}

type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// NewClientWithHTTPClient wraps an existing *http.Client, e.g. one with a
// custom transport.
func NewClientWithHTTPClient(hc *http.Client, logger *zap.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		httpClient: hc,
		logger:     logger,
	}
}

// Do sends the request once. Transport failures are returned as errors; HTTP
// error statuses are not.
func (c *Client) Do(opts RequestOptions) (*Response, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := c.buildRequest(ctx, opts)
	if err != nil {
		c.logger.Error("Failed to build request", zap.Error(err), zap.String("method", opts.Method), zap.String("url", opts.URL))
		return nil, err
	}

	c.logger.Debug("Making HTTP request",
		zap.String("method", opts.Method),
		zap.String("url", redactQuery(opts.URL)))

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("HTTP request failed",
			zap.Error(err),
			zap.String("method", opts.Method),
			zap.String("url", redactQuery(opts.URL)))
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("HTTP request completed",
		zap.Int("status_code", httpResp.StatusCode),
		zap.String("method", opts.Method),
		zap.String("url", redactQuery(opts.URL)),
		zap.Duration("elapsed", time.Since(start)))

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context, opts RequestOptions) (*http.Request, error) {
	var bodyReader io.Reader
	if opts.Body != nil {
		if bodyBytes, ok := opts.Body.([]byte); ok {
			bodyReader = bytes.NewReader(bodyBytes)
		} else if isFormEncoded(opts.Headers) {
			form, err := encodeForm(opts.Body)
			if err != nil {
				return nil, err
			}
			bodyReader = strings.NewReader(form.Encode())
		} else {
			bodyJSON, err := json.Marshal(opts.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal request body: %w", err)
			}
			bodyReader = bytes.NewReader(bodyJSON)
		}
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if opts.Body != nil && headerValue(opts.Headers, "Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

func isFormEncoded(headers map[string]string) bool {
	return strings.HasPrefix(strings.ToLower(headerValue(headers, "Content-Type")), "application/x-www-form-urlencoded")
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// encodeForm accepts url.Values only; the token endpoint is the sole form caller.
func encodeForm(body interface{}) (url.Values, error) {
	form, ok := body.(url.Values)
	if !ok {
		return nil, fmt.Errorf("form body must be url.Values, got %T", body)
	}
	return form, nil
}

func (c *Client) Post(ctx context.Context, url string, headers map[string]string, body interface{}) (*Response, error) {
	return c.Do(RequestOptions{
		Method:  http.MethodPost,
		URL:     url,
		Headers: headers,
		Body:    body,
		Context: ctx,
	})
}
