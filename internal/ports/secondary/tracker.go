package secondary

import "context"

// Issue lifecycle states as reported by the tracker API.
const (
	IssueStateOpen   = "open"
	IssueStateClosed = "closed"
)

// TrackerClient defines the secondary port for the issue tracker.
// Read-only: the sync engine never mutates tracker state.
type TrackerClient interface {
	// SearchIssues returns issues in owner/repo matching the given
	// lifecycle state ("open" or "closed"). No title filtering is applied
	// here; callers filter to decodable titles.
	SearchIssues(ctx context.Context, owner, repo, state string) ([]IssueRecord, error)

	// GetIssue fetches the current state of a single issue.
	// Returns ErrNotFound if the issue does not exist.
	GetIssue(ctx context.Context, owner, repo string, number int64) (*IssueRecord, error)
}

// IssueRecord represents a tracker issue at the port boundary.
type IssueRecord struct {
	Number int64
	Title  string
	State  string
	URL    string
}
