package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/example/bridgebot/internal/ports/secondary"
)

// SyncLogRepository implements secondary.SyncLogRepository using SQLite.
type SyncLogRepository struct {
	db *sql.DB
}

// NewSyncLogRepository creates a new SyncLogRepository.
func NewSyncLogRepository(db *sql.DB) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

// Append persists a new log entry.
func (r *SyncLogRepository) Append(ctx context.Context, entry *secondary.SyncLogRecord) error {
	if entry.CreatedAt == "" {
		entry.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	query := `INSERT INTO sync_log (project, action, thread_id, issue_number, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		entry.Project,
		entry.Action,
		formatThreadID(entry.ThreadID),
		entry.IssueNumber,
		entry.Detail,
		entry.CreatedAt,
	)
	if err != nil {
		return err
	}

	entry.ID, err = result.LastInsertId()
	return err
}

// List retrieves log entries matching the given filters, newest first.
func (r *SyncLogRepository) List(ctx context.Context, filters secondary.SyncLogFilters) ([]*secondary.SyncLogRecord, error) {
	query := `SELECT id, project, action, thread_id, issue_number, detail, created_at
		FROM sync_log WHERE 1=1`
	args := []interface{}{}

	if filters.Project != "" {
		query += " AND project = ?"
		args = append(args, filters.Project)
	}
	if filters.Action != "" {
		query += " AND action = ?"
		args = append(args, filters.Action)
	}
	query += " ORDER BY id DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*secondary.SyncLogRecord
	for rows.Next() {
		var record secondary.SyncLogRecord
		var storedID string
		var issueNumber sql.NullInt64
		var detail sql.NullString

		if err := rows.Scan(
			&record.ID,
			&record.Project,
			&record.Action,
			&storedID,
			&issueNumber,
			&detail,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}

		record.ThreadID, err = strconv.ParseUint(storedID, 10, 64)
		if err != nil {
			return nil, err
		}
		record.IssueNumber = issueNumber.Int64
		record.Detail = detail.String
		records = append(records, &record)
	}
	return records, rows.Err()
}

// PruneOlderThan deletes entries older than the given number of days.
func (r *SyncLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)

	result, err := r.db.ExecContext(ctx, `DELETE FROM sync_log WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}

	deleted, err := result.RowsAffected()
	return int(deleted), err
}

// Ensure SyncLogRepository implements the interface
var _ secondary.SyncLogRepository = (*SyncLogRepository)(nil)
