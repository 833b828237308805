package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/zoho"
	"go.uber.org/zap"
)

// Request headers carrying per-tenant credentials.
const (
	HeaderBaseURL      = "X-CRM-Base-URL"
	HeaderAccessToken  = "X-CRM-Access-Token"
	HeaderClientID     = "X-CRM-Client-ID"
	HeaderClientSecret = "X-CRM-Client-Secret"
	HeaderRefreshToken = "X-CRM-Refresh-Token"
)

// CredentialsFromHeaders reads the tenant headers. Absent headers leave the
// field empty; no validation is done.
func CredentialsFromHeaders(h http.Header) zoho.Credentials {
	return zoho.Credentials{
		BaseURL:      h.Get(HeaderBaseURL),
		AccessToken:  h.Get(HeaderAccessToken),
		ClientID:     h.Get(HeaderClientID),
		ClientSecret: h.Get(HeaderClientSecret),
		RefreshToken: h.Get(HeaderRefreshToken),
	}
}

// FromRequest extracts and validates the credentials of r.
func FromRequest(r *http.Request) (zoho.Credentials, error) {
	creds := CredentialsFromHeaders(r.Header)
	if err := creds.Validate(); err != nil {
		return zoho.Credentials{}, err
	}
	return creds, nil
}

// NewClient builds a client scoped to the tenant of r. Each call yields a
// fresh client, so tokens are never shared between requests.
func NewClient(r *http.Request, logger *zap.Logger, opts ...zoho.Option) (*zoho.Client, error) {
	creds, err := FromRequest(r)
	if err != nil {
		return nil, err
	}
	return zoho.NewWithLogger(creds, logger, opts...)
}

type contextKey struct{}

// WithClient returns a copy of ctx carrying client. Middleware uses it; tool
// handlers in tests can use it to inject a fake CRM.
func WithClient(ctx context.Context, client zoho.CRM) context.Context {
	return context.WithValue(ctx, contextKey{}, client)
}

// FromContext returns the client stored by Middleware, or nil.
func FromContext(ctx context.Context) zoho.CRM {
	client, _ := ctx.Value(contextKey{}).(zoho.CRM)
	return client
}

// Middleware is the hook an MCP HTTP server mounts in front of its tool
// handlers. It builds a per-request client from the tenant headers and
// stores it in the request context, where handlers read it with FromContext.
// Requests without usable credentials are rejected with 401.
func Middleware(logger *zap.Logger, opts ...zoho.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, err := NewClient(r, logger, opts...)
			if err != nil {
				logger.Warn("Rejected request without tenant credentials",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				writeError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClient(r.Context(), client)))
		})
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := ""
	var apiErr *zoho.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
		code = apiErr.Code
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
		"code":  code,
	})
}
