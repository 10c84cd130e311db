package primary

import "context"

// AuditService defines the primary port for read-only drift inspection.
// Nothing here mutates either external system.
type AuditService interface {
	// AuditProject compares open-issue thread ids against the forum's
	// active threads and reports which managed threads are in the wrong
	// lock state and which open issues reference missing threads.
	AuditProject(ctx context.Context, project Project) (*AuditReport, error)

	// InspectProject lists tracker issues carrying decodable thread ids,
	// with their lifecycle states.
	InspectProject(ctx context.Context, project Project) (*InspectReport, error)
}

// AuditReport summarizes sync health for one project.
type AuditReport struct {
	Project          string
	OpenIssueThreads int
	ManagedUnlocked  int
	ManagedLocked    int
	WrongState       []AuditFinding
	MissingThreads   []MissingThread
}

// AuditFinding describes a managed thread whose lock state contradicts
// its linked issue's lifecycle state.
type AuditFinding struct {
	ThreadID   uint64
	ThreadName string
	Reason     string
}

// MissingThread describes an open issue whose embedded thread id matches
// no active forum thread.
type MissingThread struct {
	ThreadID    uint64
	IssueNumber int64
	IssueTitle  string
}

// InspectReport lists linked issues for one project.
type InspectReport struct {
	Project     string
	TotalIssues int
	Linked      []LinkedIssue
}

// LinkedIssue is an issue whose title decodes to a thread id.
type LinkedIssue struct {
	Number   int64
	Title    string
	State    string
	ThreadID uint64
}

// Clean reports whether the audit found nothing to correct.
func (r *AuditReport) Clean() bool {
	return len(r.WrongState) == 0 && len(r.MissingThreads) == 0
}
