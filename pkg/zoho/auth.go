package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	httpclient "github.com/primrose-mcp/primrose-mcp-zoho/pkg/http"
	"go.uber.org/zap"
)

// tokenExpiryBuffer is subtracted from expires_in so a token is refreshed
// before the server stops accepting it.
const tokenExpiryBuffer = 60 * time.Second

// tokenCache holds the last refreshed access token for one client.
type tokenCache struct {
	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

// tokenManager resolves the token to send on each request.
type tokenManager struct {
	creds      Credentials
	tokenURL   string
	httpClient *httpclient.Client
	cache      *tokenCache
	refreshMu  sync.Mutex
	now        func() time.Time
	logger     *zap.Logger
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	APIDomain   string `json:"api_domain"`
	TokenType   string `json:"token_type"`
	Error       string `json:"error"`
}

// AccessToken returns the direct token when one was supplied, otherwise a
// cached or freshly refreshed token.
func (m *tokenManager) AccessToken(ctx context.Context) (string, error) {
	if m.creds.AccessToken != "" {
		return m.creds.AccessToken, nil
	}

	if token, ok := m.cached(); ok {
		return token, nil
	}

	if !m.creds.canRefresh() {
		return "", NewAuthenticationError(missingCredentialsMessage)
	}

	// One refresh at a time; late arrivals reuse the winner's token.
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	if token, ok := m.cached(); ok {
		return token, nil
	}

	m.logger.Info("Access token expired or not available, refreshing")
	resp, err := m.refresh(ctx)
	if err != nil {
		return "", err
	}

	expiresAt := m.now().Add(time.Duration(resp.ExpiresIn)*time.Second - tokenExpiryBuffer)

	m.cache.mu.Lock()
	m.cache.accessToken = resp.AccessToken
	m.cache.expiresAt = expiresAt
	m.cache.mu.Unlock()

	m.logger.Info("Successfully refreshed and cached access token",
		zap.Time("expires_at", expiresAt))

	return resp.AccessToken, nil
}

func (m *tokenManager) cached() (string, bool) {
	m.cache.mu.RLock()
	defer m.cache.mu.RUnlock()

	if m.cache.accessToken != "" && m.now().Before(m.cache.expiresAt) {
		m.logger.Debug("Using cached access token",
			zap.Duration("remaining", m.cache.expiresAt.Sub(m.now())))
		return m.cache.accessToken, true
	}
	return "", false
}

func (m *tokenManager) refresh(ctx context.Context) (*tokenResponse, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {m.creds.ClientID},
		"client_secret": {m.creds.ClientSecret},
		"refresh_token": {m.creds.RefreshToken},
	}
	headers := map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	}

	resp, err := m.httpClient.Post(ctx, m.tokenURL, headers, form)
	if err != nil {
		m.logger.Error("Token refresh request failed", zap.Error(err), zap.String("url", m.tokenURL))
		return nil, fmt.Errorf("token refresh request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		m.logger.Error("Token refresh rejected", zap.Int("status_code", resp.StatusCode))
		return nil, NewAuthenticationError("Failed to refresh OAuth token: " + string(resp.Body))
	}

	var tr tokenResponse
	if err := json.Unmarshal(resp.Body, &tr); err != nil {
		m.logger.Error("Failed to parse token response", zap.Error(err))
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	if tr.Error != "" {
		m.logger.Error("Token refresh returned an error", zap.String("error", tr.Error))
		return nil, NewAuthenticationError("OAuth token refresh failed: " + tr.Error)
	}

	return &tr, nil
}
