package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/example/bridgebot/internal/ports/primary"
	"github.com/example/bridgebot/internal/ports/secondary"
)

// AuditServiceImpl implements the AuditService interface. Everything here
// is read-only: it reports drift without correcting it.
type AuditServiceImpl struct {
	issues  *IssueSource
	threads *ThreadSource
}

// NewAuditService creates a new AuditService with injected dependencies.
func NewAuditService(tracker secondary.TrackerClient, chat secondary.ChatClient, links secondary.LinkRepository) *AuditServiceImpl {
	return &AuditServiceImpl{
		issues:  NewIssueSource(tracker),
		threads: NewThreadSource(chat, links),
	}
}

// AuditProject compares open-issue thread ids with the forum's active
// threads and reports mismatches.
func (s *AuditServiceImpl) AuditProject(ctx context.Context, project primary.Project) (*primary.AuditReport, error) {
	guildID, forumID, err := parseProjectIDs(project)
	if err != nil {
		return nil, err
	}

	open, err := s.issues.ListLinkedIssues(ctx, project.GithubOwner, project.GithubRepo, secondary.IssueStateOpen)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", project.Label(), err)
	}

	openByThread := make(map[uint64]LinkedIssue, len(open))
	for _, linked := range open {
		openByThread[linked.ThreadID] = linked
	}

	threads, err := s.threads.ListForumThreads(ctx, guildID, forumID)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", project.Label(), err)
	}

	report := &primary.AuditReport{
		Project:          project.Label(),
		OpenIssueThreads: len(openByThread),
	}

	seen := make(map[uint64]bool, len(threads))
	for _, thread := range threads {
		linked, isLinked := openByThread[thread.ID]
		if !isLinked {
			continue
		}
		seen[thread.ID] = true
		if thread.Archived {
			continue
		}
		if thread.Locked {
			report.ManagedLocked++
			report.WrongState = append(report.WrongState, primary.AuditFinding{
				ThreadID:   thread.ID,
				ThreadName: thread.Name,
				Reason:     fmt.Sprintf("should be unlocked: issue #%d is open", linked.Issue.Number),
			})
		} else {
			report.ManagedUnlocked++
		}
	}

	for threadID, linked := range openByThread {
		if !seen[threadID] {
			report.MissingThreads = append(report.MissingThreads, primary.MissingThread{
				ThreadID:    threadID,
				IssueNumber: linked.Issue.Number,
				IssueTitle:  linked.Issue.Title,
			})
		}
	}

	return report, nil
}

// InspectProject lists tracker issues carrying decodable thread ids.
func (s *AuditServiceImpl) InspectProject(ctx context.Context, project primary.Project) (*primary.InspectReport, error) {
	report := &primary.InspectReport{Project: project.Label()}

	for _, state := range []string{secondary.IssueStateOpen, secondary.IssueStateClosed} {
		linked, err := s.issues.ListLinkedIssues(ctx, project.GithubOwner, project.GithubRepo, state)
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", project.Label(), err)
		}
		for _, item := range linked {
			report.Linked = append(report.Linked, primary.LinkedIssue{
				Number:   item.Issue.Number,
				Title:    item.Issue.Title,
				State:    item.Issue.State,
				ThreadID: item.ThreadID,
			})
		}
		report.TotalIssues += len(linked)
	}

	return report, nil
}

func parseProjectIDs(project primary.Project) (guildID, forumID uint64, err error) {
	guildID, err = strconv.ParseUint(project.GuildID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("project %s: malformed guild id %q: %w", project.Label(), project.GuildID, err)
	}
	forumID, err = strconv.ParseUint(project.ForumID, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("project %s: malformed forum id %q: %w", project.Label(), project.ForumID, err)
	}
	return guildID, forumID, nil
}

// Ensure AuditServiceImpl implements the interface
var _ primary.AuditService = (*AuditServiceImpl)(nil)
