// Package primary defines the primary ports (driving interfaces) for the
// application. CLI commands and the scheduler talk to the sync engine
// through these interfaces only.
package primary

import "context"

// SyncService defines the primary port for drift reconciliation.
// One call reconciles one project for one cycle.
type SyncService interface {
	// SyncProject runs a single reconciliation pass for a project:
	// reopens threads whose linked issue is open, closes threads whose
	// discovered issue is closed, and leaves everything else untouched.
	// Per-thread failures are logged and counted, never returned; the
	// returned error covers only failures that void the whole cycle
	// (malformed project ids, tracker or thread listing failures).
	SyncProject(ctx context.Context, project Project) (*SyncReport, error)
}

// Project is the immutable per-project configuration unit. Guild and forum
// ids are kept as raw strings and parsed at the start of each cycle; a
// malformed id is a per-project configuration error, not a startup error.
type Project struct {
	Name          string
	GuildID       string
	ForumID       string
	GithubOwner   string
	GithubRepo    string
	AllowedRoleID string
}

// SyncReport summarizes one reconciliation cycle for one project.
type SyncReport struct {
	Project        string
	OpenIssues     int
	ThreadsFound   int
	ThreadsMissing int
	Reopened       int
	Closed         int
	Indeterminate  int
	ThreadErrors   int
}

// Label returns the project name, or a placeholder for unnamed projects.
func (p Project) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return "unnamed"
}

// RepoSlug returns the owner/repo form used in log lines and queries.
func (p Project) RepoSlug() string {
	return p.GithubOwner + "/" + p.GithubRepo
}
