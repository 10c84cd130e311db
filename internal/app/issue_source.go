package app

import (
	"context"
	"fmt"

	"github.com/example/bridgebot/internal/core/threadid"
	"github.com/example/bridgebot/internal/ports/secondary"
)

// IssueSource queries the tracker for issues carrying a decodable thread
// id. Issues whose titles do not decode are invisible to reconciliation.
type IssueSource struct {
	tracker secondary.TrackerClient
}

// NewIssueSource creates a new IssueSource.
func NewIssueSource(tracker secondary.TrackerClient) *IssueSource {
	return &IssueSource{tracker: tracker}
}

// LinkedIssue couples a tracker issue with its decoded thread id.
type LinkedIssue struct {
	Issue    secondary.IssueRecord
	ThreadID uint64
}

// ListLinkedIssues returns issues in owner/repo with the given lifecycle
// state whose titles decode to a thread id. A tracker failure propagates;
// it is never reported as an empty result.
func (s *IssueSource) ListLinkedIssues(ctx context.Context, owner, repo, state string) ([]LinkedIssue, error) {
	issues, err := s.tracker.SearchIssues(ctx, owner, repo, state)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s issues in %s/%s: %w", state, owner, repo, err)
	}

	linked := make([]LinkedIssue, 0, len(issues))
	for _, issue := range issues {
		id, ok := threadid.Decode(issue.Title)
		if !ok {
			continue
		}
		linked = append(linked, LinkedIssue{Issue: issue, ThreadID: id})
	}
	return linked, nil
}
