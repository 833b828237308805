package zoho

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const tokenPath = "/oauth/v2/token"

var refreshCreds = Credentials{
	ClientID:     "client-id",
	ClientSecret: "client-secret",
	RefreshToken: "refresh-token",
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// newRefreshClient returns a client using the refresh flow against f, and a
// counter of token endpoint hits.
func newRefreshClient(t *testing.T, f *fakeZoho, clock *testClock) (*Client, *int32) {
	t.Helper()

	var hits int32
	f.handle(http.MethodPost, tokenPath, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"access_token": fmt.Sprintf("token-%d", n),
			"expires_in":   3600,
			"token_type":   "Bearer",
		})
	})

	creds := refreshCreds
	creds.BaseURL = f.server.URL
	c, err := NewWithLogger(creds, zaptest.NewLogger(t),
		WithTokenURL(f.server.URL+tokenPath),
		WithClock(clock.Now))
	require.NoError(t, err)
	return c, &hits
}

func TestAccessToken_DirectTokenSkipsRefresh(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodGet, "/crm/v6/users", http.StatusOK, map[string]interface{}{"users": []interface{}{}})
	c := newTestClient(t, f)

	_, err := c.ListUsers(context.Background(), "")
	require.NoError(t, err)

	reqs := f.requestsTo(http.MethodGet, "/crm/v6/users")
	require.Len(t, reqs, 1)
	assert.Equal(t, "Zoho-oauthtoken "+testToken, reqs[0].Header.Get("Authorization"))
	assert.Empty(t, f.requestsTo(http.MethodPost, tokenPath))
}

func TestAccessToken_RefreshesOnceAndCaches(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodGet, "/crm/v6/users", http.StatusOK, map[string]interface{}{"users": []interface{}{}})
	clock := &testClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c, hits := newRefreshClient(t, f, clock)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := c.ListUsers(ctx, "")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	reqs := f.requestsTo(http.MethodPost, tokenPath)
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].Header.Get("Content-Type"), "application/x-www-form-urlencoded")
	assert.Contains(t, reqs[0].Raw, "grant_type=refresh_token")
	assert.Contains(t, reqs[0].Raw, "refresh_token=refresh-token")
	assert.Contains(t, reqs[0].Raw, "client_id=client-id")
	assert.Contains(t, reqs[0].Raw, "client_secret=client-secret")

	for _, r := range f.requestsTo(http.MethodGet, "/crm/v6/users") {
		assert.Equal(t, "Zoho-oauthtoken token-1", r.Header.Get("Authorization"))
	}
}

func TestAccessToken_ExpiryIncludesBuffer(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodGet, "/crm/v6/users", http.StatusOK, map[string]interface{}{"users": []interface{}{}})
	clock := &testClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c, hits := newRefreshClient(t, f, clock)
	ctx := context.Background()

	_, err := c.ListUsers(ctx, "")
	require.NoError(t, err)

	// 3600 s lifetime minus the 60 s buffer.
	clock.Advance(3539 * time.Second)
	_, err = c.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	clock.Advance(time.Second)
	_, err = c.ListUsers(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(hits))

	reqs := f.requestsTo(http.MethodGet, "/crm/v6/users")
	require.Len(t, reqs, 3)
	assert.Equal(t, "Zoho-oauthtoken token-2", reqs[2].Header.Get("Authorization"))
}

func TestAccessToken_ConcurrentCallersShareRefresh(t *testing.T) {
	f := newFakeZoho(t)
	f.reply(http.MethodGet, "/crm/v6/users", http.StatusOK, map[string]interface{}{"users": []interface{}{}})
	clock := &testClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c, hits := newRefreshClient(t, f, clock)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.ListUsers(context.Background(), "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestAccessToken_RefreshFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    interface{}
		wantMsg string
	}{
		{
			name:    "non-2xx response",
			status:  http.StatusBadRequest,
			body:    map[string]string{"error": "invalid_client"},
			wantMsg: "Failed to refresh OAuth token: ",
		},
		{
			name:    "error field in body",
			status:  http.StatusOK,
			body:    map[string]string{"error": "invalid_code"},
			wantMsg: "OAuth token refresh failed: invalid_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeZoho(t)
			f.reply(http.MethodPost, tokenPath, tt.status, tt.body)

			creds := refreshCreds
			creds.BaseURL = f.server.URL
			c, err := NewWithLogger(creds, zaptest.NewLogger(t), WithTokenURL(f.server.URL+tokenPath))
			require.NoError(t, err)

			_, err = c.GetContact(context.Background(), "1")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrAuthentication))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, f.requestsTo(http.MethodGet, "/crm/v6/Contacts/1"))
		})
	}
}

func TestAccessToken_MissingCredentials(t *testing.T) {
	m := &tokenManager{
		creds:  Credentials{ClientID: "only-id"},
		cache:  &tokenCache{},
		now:    time.Now,
		logger: zaptest.NewLogger(t),
	}

	_, err := m.AccessToken(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAuthentication))
	assert.Equal(t, missingCredentialsMessage, err.Error())
}

func TestCredentialsValidate(t *testing.T) {
	assert.NoError(t, Credentials{AccessToken: "tok"}.Validate())
	assert.NoError(t, refreshCreds.Validate())

	err := Credentials{ClientID: "id", ClientSecret: "secret"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAuthentication))

	_, err = NewWithLogger(Credentials{}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestTokenURL(t *testing.T) {
	tests := []struct {
		baseURL string
		want    string
	}{
		{"https://www.zohoapis.com", "https://accounts.zoho.com/oauth/v2/token"},
		{"https://www.zohoapis.eu", "https://accounts.zoho.eu/oauth/v2/token"},
		{"https://www.zohoapis.in", "https://accounts.zoho.in/oauth/v2/token"},
		{"https://www.zohoapis.com.au", "https://accounts.zoho.com.au/oauth/v2/token"},
		{"https://www.zohoapis.com.cn", "https://accounts.zoho.com.cn/oauth/v2/token"},
		{"https://www.zohoapis.jp", "https://accounts.zoho.jp/oauth/v2/token"},
		{"https://WWW.ZOHOAPIS.EU", "https://accounts.zoho.eu/oauth/v2/token"},
		{"", "https://accounts.zoho.com/oauth/v2/token"},
	}

	for _, tt := range tests {
		t.Run(tt.baseURL, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenURL(tt.baseURL))
		})
	}
}
