// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the sync engine
// drives external systems and local persistence.
package secondary

import "context"

// LinkRepository defines the secondary port for the discovered-link cache.
// The cache is an optimization over the bounded message-history scan; an
// entry records that a thread's notification messages referenced a given
// issue. Entries are invalidated when the referenced issue disappears.
type LinkRepository interface {
	// Get retrieves the cached link for a thread, or nil if none exists.
	Get(ctx context.Context, threadID uint64) (*LinkRecord, error)

	// Put inserts or replaces the cached link for a thread.
	Put(ctx context.Context, link *LinkRecord) error

	// Delete removes the cached link for a thread. Deleting a missing
	// entry is not an error.
	Delete(ctx context.Context, threadID uint64) error
}

// LinkRecord represents a cached thread→issue link.
type LinkRecord struct {
	ThreadID     uint64
	IssueNumber  int64
	IssueURL     string
	DiscoveredAt string
	UpdatedAt    string
}

// SyncLogRepository defines the secondary port for the durable action log.
// Every corrective action and per-unit failure is recorded here so that
// drift corrections remain auditable after the fact.
type SyncLogRepository interface {
	// Append persists a new log entry. ID and CreatedAt are assigned by
	// the repository.
	Append(ctx context.Context, entry *SyncLogRecord) error

	// List retrieves log entries matching the given filters, newest first.
	List(ctx context.Context, filters SyncLogFilters) ([]*SyncLogRecord, error)

	// PruneOlderThan deletes entries older than the given number of days
	// and returns the number deleted.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// SyncLogRecord represents a sync action log entry as stored.
type SyncLogRecord struct {
	ID          int64
	Project     string
	Action      string
	ThreadID    uint64
	IssueNumber int64
	Detail      string
	CreatedAt   string
}

// SyncLogFilters contains filter options for querying the action log.
type SyncLogFilters struct {
	Project string
	Action  string
	Limit   int
}

// Sync log action constants.
const (
	SyncActionReopen = "reopen"
	SyncActionClose  = "close"
	SyncActionError  = "error"
)
