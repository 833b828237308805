package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/audit"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/config"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/zoho"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionID := uuid.New()
	opts := []zoho.Option{zoho.WithSessionID(sessionID)}
	app := &cli{cfg: cfg}

	// Audit trail is optional; the CLI keeps working without it.
	if cfg.AuditEnabled {
		db, err := audit.Open(ctx, audit.NewConfig(), logger)
		if err != nil {
			logger.Warn("Failed to connect to audit database, continuing without audit trail", zap.Error(err))
		} else {
			defer db.Close()
			if err := db.InitSchema(ctx); err != nil {
				logger.Warn("Failed to initialize audit schema, continuing without audit trail", zap.Error(err))
			} else {
				app.store = audit.NewPostgresStore(db)
				opts = append(opts, zoho.WithMiddleware(audit.Middleware(app.store, sessionID, logger)))
			}
		}
	}

	if policy, ok := cfg.RetryPolicy(); ok {
		opts = append(opts, zoho.WithRetry(policy))
	}

	app.connect = func() (zoho.CRM, error) {
		client, err := zoho.NewWithLogger(cfg.Credentials(), logger, opts...)
		if err != nil {
			logger.Error("Failed to create CRM client", zap.Error(err))
			return nil, fmt.Errorf("failed to create CRM client: %w", err)
		}
		return client, nil
	}

	if err := newRootCmd(app).ExecuteContext(ctx); err != nil {
		logger.Debug("Command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
