// Package sqlite implements the persistence secondary ports using SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/example/bridgebot/internal/ports/secondary"
)

// LinkRepository implements secondary.LinkRepository using SQLite.
type LinkRepository struct {
	db *sql.DB
}

// NewLinkRepository creates a new LinkRepository.
func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Get retrieves the cached link for a thread, or nil if none exists.
func (r *LinkRepository) Get(ctx context.Context, threadID uint64) (*secondary.LinkRecord, error) {
	query := `SELECT thread_id, issue_number, issue_url, discovered_at, updated_at
		FROM link_cache WHERE thread_id = ?`

	var record secondary.LinkRecord
	var storedID string

	err := r.db.QueryRowContext(ctx, query, formatThreadID(threadID)).Scan(
		&storedID,
		&record.IssueNumber,
		&record.IssueURL,
		&record.DiscoveredAt,
		&record.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	record.ThreadID, err = strconv.ParseUint(storedID, 10, 64)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Put inserts or replaces the cached link for a thread.
func (r *LinkRepository) Put(ctx context.Context, link *secondary.LinkRecord) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if link.DiscoveredAt == "" {
		link.DiscoveredAt = now
	}
	link.UpdatedAt = now

	query := `INSERT INTO link_cache (thread_id, issue_number, issue_url, discovered_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(thread_id) DO UPDATE SET
			issue_number = excluded.issue_number,
			issue_url = excluded.issue_url,
			updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		formatThreadID(link.ThreadID),
		link.IssueNumber,
		link.IssueURL,
		link.DiscoveredAt,
		link.UpdatedAt,
	)
	return err
}

// Delete removes the cached link for a thread.
func (r *LinkRepository) Delete(ctx context.Context, threadID uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM link_cache WHERE thread_id = ?`, formatThreadID(threadID))
	return err
}

// Thread ids are stored as decimal text: they are unsigned 64-bit
// snowflakes and SQLite INTEGER is signed.
func formatThreadID(threadID uint64) string {
	return strconv.FormatUint(threadID, 10)
}

// Ensure LinkRepository implements the interface
var _ secondary.LinkRepository = (*LinkRepository)(nil)
