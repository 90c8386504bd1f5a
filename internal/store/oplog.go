package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"portfolio-cli/internal/model"

	_ "modernc.org/sqlite"
)

const oplogFileName = "oplog.sqlite"

// Op is one recorded write round-trip against the backend. The log is local
// to this machine and purely informational; the backend remains the source
// of truth for project data.
type Op struct {
	ID        string
	Kind      string // "create" or "update"
	ProjectID string
	Title     string
	IssuedAt  time.Time
	Snapshot  model.Project
}

// OpLog appends and lists write operations in a local sqlite database.
type OpLog struct {
	db *sql.DB
}

// OpenOpLog opens (creating if needed) the op log under the config dir.
func OpenOpLog(ctx context.Context) (*OpLog, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, oplogFileName))
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout helps avoid
	// "database is locked" flakiness when CLI and TUI overlap.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS ops (
		op_id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		project_id TEXT NOT NULL,
		title TEXT NOT NULL,
		issued_at_unixms INTEGER NOT NULL,
		snapshot_json TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_ops_issued ON ops(issued_at_unixms);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &OpLog{db: db}, nil
}

func (l *OpLog) Close() error { return l.db.Close() }

// Append records a completed create/update with the project as the backend
// returned it.
func (l *OpLog) Append(ctx context.Context, kind string, p model.Project) error {
	snapshot, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO ops(op_id, kind, project_id, title, issued_at_unixms, snapshot_json) VALUES(?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), kind, p.ID, p.Title, time.Now().UnixMilli(), string(snapshot),
	)
	if err != nil {
		return fmt.Errorf("append op: %w", err)
	}
	return nil
}

// List returns the most recent operations, newest first. limit <= 0 means no
// limit.
func (l *OpLog) List(ctx context.Context, limit int) ([]Op, error) {
	q := `SELECT op_id, kind, project_id, title, issued_at_unixms, snapshot_json FROM ops ORDER BY issued_at_unixms DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := l.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []Op
	for rows.Next() {
		var op Op
		var issuedMs int64
		var snapshot string
		if err := rows.Scan(&op.ID, &op.Kind, &op.ProjectID, &op.Title, &issuedMs, &snapshot); err != nil {
			return nil, err
		}
		op.IssuedAt = time.UnixMilli(issuedMs)
		if err := json.Unmarshal([]byte(snapshot), &op.Snapshot); err != nil {
			return nil, fmt.Errorf("decode snapshot for %s: %w", op.ID, err)
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}
