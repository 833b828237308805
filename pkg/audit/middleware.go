package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	httpclient "github.com/primrose-mcp/primrose-mcp-zoho/pkg/http"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/zoho"
	"go.uber.org/zap"
)

// Middleware records one Entry per executed request. Store failures are
// logged and never change the call's outcome.
func Middleware(store Store, sessionID uuid.UUID, logger *zap.Logger) zoho.Middleware {
	return func(next zoho.Executor) zoho.Executor {
		return zoho.ExecutorFunc(func(ctx context.Context, req *zoho.Request) (*httpclient.Response, error) {
			start := time.Now()
			resp, err := next.Execute(ctx, req)

			entry := Entry{
				ID:         uuid.New(),
				SessionID:  sessionID,
				Method:     req.Method,
				Path:       req.Path,
				Duration:   time.Since(start),
				OccurredAt: start.UTC(),
			}
			if resp != nil {
				entry.StatusCode = resp.StatusCode
			}
			var apiErr *zoho.APIError
			if errors.As(err, &apiErr) {
				entry.StatusCode = apiErr.StatusCode
				entry.ErrorCode = apiErr.Code
			} else if err != nil {
				entry.ErrorCode = "NETWORK_ERROR"
			}

			if insertErr := store.Insert(context.WithoutCancel(ctx), entry); insertErr != nil {
				logger.Warn("Failed to record audit entry",
					zap.String("method", req.Method),
					zap.String("path", req.Path),
					zap.Error(insertErr))
			}

			return resp, err
		})
	}
}
