package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS crm_call_audit (
	id          UUID PRIMARY KEY,
	session_id  UUID NOT NULL,
	method      TEXT NOT NULL,
	path        TEXT NOT NULL,
	status_code INTEGER,
	error_code  TEXT,
	duration_ms BIGINT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS crm_call_audit_session_idx
	ON crm_call_audit (session_id, occurred_at DESC);
`

// Entry is one executed CRM call. StatusCode is zero when no response was
// received; ErrorCode is empty on success.
type Entry struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	Method     string
	Path       string
	StatusCode int
	ErrorCode  string
	Duration   time.Duration
	OccurredAt time.Time
}

// Store persists audit entries.
type Store interface {
	Insert(ctx context.Context, e Entry) error
}

// PostgresStore writes entries to the crm_call_audit table.
type PostgresStore struct {
	db *DB
}

func NewPostgresStore(db *DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Insert(ctx context.Context, e Entry) error {
	_, err := s.db.pool.Exec(ctx, `
		INSERT INTO crm_call_audit (id, session_id, method, path, status_code, error_code, duration_ms, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pgtype.UUID{Bytes: e.ID, Valid: true},
		pgtype.UUID{Bytes: e.SessionID, Valid: true},
		e.Method, e.Path,
		pgtype.Int4{Int32: int32(e.StatusCode), Valid: e.StatusCode != 0},
		pgtype.Text{String: e.ErrorCode, Valid: e.ErrorCode != ""},
		e.Duration.Milliseconds(), e.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

// ListSession returns the most recent entries for one client session.
func (s *PostgresStore) ListSession(ctx context.Context, sessionID uuid.UUID, limit int) ([]Entry, error) {
	rows, err := s.db.pool.Query(ctx, `
		SELECT id, session_id, method, path, status_code, error_code, duration_ms, occurred_at
		FROM crm_call_audit
		WHERE session_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var (
			e          Entry
			id         pgtype.UUID
			sessionID  pgtype.UUID
			statusCode pgtype.Int4
			errorCode  pgtype.Text
			durationMS int64
		)
		if err := row.Scan(&id, &sessionID, &e.Method, &e.Path, &statusCode, &errorCode, &durationMS, &e.OccurredAt); err != nil {
			return Entry{}, err
		}
		e.ID = uuid.UUID(id.Bytes)
		e.SessionID = uuid.UUID(sessionID.Bytes)
		e.StatusCode = int(statusCode.Int32)
		e.ErrorCode = errorCode.String
		e.Duration = time.Duration(durationMS) * time.Millisecond
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit entries: %w", err)
	}
	return entries, nil
}
