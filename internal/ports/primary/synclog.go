package primary

import "context"

// SyncLogService defines the primary port for the durable action log.
type SyncLogService interface {
	// ListActions retrieves recorded sync actions matching the filters,
	// newest first.
	ListActions(ctx context.Context, filters ActionFilters) ([]*ActionEntry, error)

	// PruneActions deletes entries older than the given number of days
	// and returns the number deleted.
	PruneActions(ctx context.Context, olderThanDays int) (int, error)
}

// ActionEntry represents a recorded sync action at the port boundary.
type ActionEntry struct {
	ID          int64
	Project     string
	Action      string
	ThreadID    uint64
	IssueNumber int64
	Detail      string
	CreatedAt   string
}

// ActionFilters contains filter options for listing sync actions.
type ActionFilters struct {
	Project string
	Action  string
	Limit   int
}
