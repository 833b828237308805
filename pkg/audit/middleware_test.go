package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	httpclient "github.com/primrose-mcp/primrose-mcp-zoho/pkg/http"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/zoho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type memoryStore struct {
	mu      sync.Mutex
	entries []Entry
	err     error
}

func (s *memoryStore) Insert(ctx context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, e)
	return nil
}

func run(t *testing.T, store Store, sessionID uuid.UUID, next zoho.ExecutorFunc) (*httpclient.Response, error) {
	t.Helper()
	exec := Middleware(store, sessionID, zaptest.NewLogger(t))(next)
	return exec.Execute(context.Background(), &zoho.Request{Method: "GET", Path: "/crm/v6/Deals"})
}

func TestMiddleware_RecordsSuccess(t *testing.T) {
	store := &memoryStore{}
	sessionID := uuid.New()

	resp, err := run(t, store, sessionID, func(ctx context.Context, req *zoho.Request) (*httpclient.Response, error) {
		return &httpclient.Response{StatusCode: 200}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	require.Len(t, store.entries, 1)
	e := store.entries[0]
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, sessionID, e.SessionID)
	assert.Equal(t, "GET", e.Method)
	assert.Equal(t, "/crm/v6/Deals", e.Path)
	assert.Equal(t, 200, e.StatusCode)
	assert.Empty(t, e.ErrorCode)
	assert.False(t, e.OccurredAt.IsZero())
}

func TestMiddleware_RecordsFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "rate limit", err: zoho.NewRateLimitError("Rate limit exceeded", 30), wantStatus: 429, wantCode: zoho.CodeRateLimitExceeded},
		{name: "api error", err: zoho.NewAPIError("invalid data", 400), wantStatus: 400, wantCode: zoho.CodeCRMError},
		{name: "network", err: errors.New("connection refused"), wantStatus: 0, wantCode: "NETWORK_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}

			_, err := run(t, store, uuid.New(), func(ctx context.Context, req *zoho.Request) (*httpclient.Response, error) {
				return nil, tt.err
			})
			assert.Equal(t, tt.err, err)

			require.Len(t, store.entries, 1)
			assert.Equal(t, tt.wantStatus, store.entries[0].StatusCode)
			assert.Equal(t, tt.wantCode, store.entries[0].ErrorCode)
		})
	}
}

func TestMiddleware_StoreFailureDoesNotFailCall(t *testing.T) {
	store := &memoryStore{err: errors.New("database is down")}

	resp, err := run(t, store, uuid.New(), func(ctx context.Context, req *zoho.Request) (*httpclient.Response, error) {
		return &httpclient.Response{StatusCode: 204}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}

func TestNewConfig(t *testing.T) {
	t.Setenv("AUDIT_DB_HOST", "")
	t.Setenv("AUDIT_DB_PORT", "6543")
	t.Setenv("AUDIT_DB_NAME", "")
	t.Setenv("AUDIT_DB_SSLMODE", "")

	cfg := NewConfig()
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, "zoho_audit", cfg.Database)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Contains(t, cfg.DSN(), "dbname=zoho_audit")
}
