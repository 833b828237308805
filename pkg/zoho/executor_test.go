package zoho

import (
	"context"
	"errors"
	"net/http"
	"testing"

	httpclient "github.com/primrose-mcp/primrose-mcp-zoho/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_RateLimit(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter string
		want       int
	}{
		{name: "header present", retryAfter: "30", want: 30},
		{name: "header absent", retryAfter: "", want: 60},
		{name: "header unparseable", retryAfter: "soon", want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeZoho(t)
			f.handle(http.MethodGet, "/crm/v6/Contacts/1", func(w http.ResponseWriter, _ *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"code": "TOO_MANY_REQUESTS"})
			})
			c := newTestClient(t, f)

			_, err := c.GetContact(context.Background(), "1")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.True(t, errors.Is(err, ErrRateLimited))
			assert.Equal(t, 429, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.RetryAfter)
			assert.True(t, IsRetryable(err))
		})
	}
}

func TestExecute_AuthenticationFailures(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			f := newFakeZoho(t)
			f.reply(http.MethodGet, "/crm/v6/Deals/9", status, map[string]string{"code": "INVALID_TOKEN"})
			c := newTestClient(t, f)

			_, err := c.GetDeal(context.Background(), "9")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrAuthentication))
			assert.Equal(t, "Authentication failed. Check your OAuth credentials.", err.Error())
			assert.False(t, IsRetryable(err))
		})
	}
}

func TestExecute_APIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
		want string
	}{
		{name: "message", body: map[string]string{"message": "invalid data", "code": "INVALID_DATA"}, want: "invalid data"},
		{name: "error", body: map[string]string{"error": "bad request"}, want: "bad request"},
		{name: "code", body: map[string]string{"code": "INVALID_MODULE"}, want: "INVALID_MODULE"},
		{name: "empty", body: nil, want: "API error: 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeZoho(t)
			f.reply(http.MethodGet, "/crm/v6/Leads/5", http.StatusBadRequest, tt.body)
			c := newTestClient(t, f)

			_, err := c.GetLead(context.Background(), "5")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, 400, apiErr.StatusCode)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestExecute_HeadersAndMerge(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodGet, "/crm/v6/custom", http.StatusOK, map[string]string{})
	c := newTestClient(t, f)

	err := c.do(context.Background(), &Request{
		Method:  http.MethodGet,
		Path:    "/crm/v6/custom",
		Headers: map[string]string{"X-Extra": "1", "Content-Type": "text/plain"},
	}, nil)
	require.NoError(t, err)

	reqs := f.requestsTo(http.MethodGet, "/crm/v6/custom")
	require.Len(t, reqs, 1)
	assert.Equal(t, "Zoho-oauthtoken "+testToken, reqs[0].Header.Get("Authorization"))
	assert.Equal(t, "1", reqs[0].Header.Get("X-Extra"))
	assert.Equal(t, "text/plain", reqs[0].Header.Get("Content-Type"))
}

func TestExecute_NoContentIsEmpty(t *testing.T) {
	f := newFakeZoho(t)
	f.handle(http.MethodGet, "/crm/v6/Contacts", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, f)

	page, err := c.ListContacts(context.Background(), PageParams{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Count)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}

func TestMiddlewareOrder(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodGet, "/crm/v6/users", http.StatusOK, map[string]interface{}{"users": []interface{}{}})

	var order []string
	trace := func(name string) Middleware {
		return func(next Executor) Executor {
			return ExecutorFunc(func(ctx context.Context, req *Request) (*httpclient.Response, error) {
				order = append(order, name)
				return next.Execute(ctx, req)
			})
		}
	}
	c := newTestClient(t, f, WithMiddleware(trace("outer"), trace("inner")))

	_, err := c.ListUsers(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}
