package delivery

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"modwall/internal/domain"
)

const outboxSchema = `
CREATE TABLE IF NOT EXISTS submissions (
    id         TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    metadata   TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    sent_at    TEXT
)`

// Record is one stored submission
type Record struct {
	Envelope  domain.Envelope
	CreatedAt string
}

// Outbox stores submissions in a local SQLite file for a later forwarder
type Outbox struct {
	db *sql.DB
}

// OpenOutbox opens or creates the outbox database at path
func OpenOutbox(path string) (*Outbox, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create outbox directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open outbox: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(outboxSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create outbox schema: %w", err)
	}
	return &Outbox{db: db}, nil
}

// Deliver appends env to the outbox. Storing the same id twice is a no-op.
func (o *Outbox) Deliver(ctx context.Context, env domain.Envelope) error {
	payload, err := json.Marshal(env.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	metadata, err := json.Marshal(env.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = o.db.ExecContext(ctx, `
        INSERT INTO submissions (id, payload, metadata)
        VALUES (?, ?, ?)
        ON CONFLICT(id) DO NOTHING
    `, env.ID, string(payload), string(metadata))
	if err != nil {
		return fmt.Errorf("failed to store submission %s: %w", env.ID, err)
	}
	return nil
}

// Pending lists the submissions not yet marked as sent, oldest first
func (o *Outbox) Pending(ctx context.Context) ([]Record, error) {
	rows, err := o.db.QueryContext(ctx, `
        SELECT id, payload, metadata, created_at
        FROM submissions
        WHERE sent_at IS NULL
        ORDER BY created_at, rowid
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query outbox: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var payload, metadata string
		if err := rows.Scan(&rec.Envelope.ID, &payload, &metadata, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outbox row: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &rec.Envelope.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode payload %s: %w", rec.Envelope.ID, err)
		}
		if err := json.Unmarshal([]byte(metadata), &rec.Envelope.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata %s: %w", rec.Envelope.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// MarkSent flags a submission as forwarded
func (o *Outbox) MarkSent(ctx context.Context, id string) error {
	_, err := o.db.ExecContext(ctx, `UPDATE submissions SET sent_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark %s as sent: %w", id, err)
	}
	return nil
}

// Drain forwards every pending submission through next and marks it sent.
// It stops at the first failure so ordering is preserved.
func (o *Outbox) Drain(ctx context.Context, next Deliverer) (int, error) {
	pending, err := o.Pending(ctx)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, rec := range pending {
		if err := next.Deliver(ctx, rec.Envelope); err != nil {
			return sent, err
		}
		if err := o.MarkSent(ctx, rec.Envelope.ID); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

// Close releases the database handle
func (o *Outbox) Close() error {
	return o.db.Close()
}
