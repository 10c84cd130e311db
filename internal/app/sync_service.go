package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/example/bridgebot/internal/core/discovery"
	"github.com/example/bridgebot/internal/ports/primary"
	"github.com/example/bridgebot/internal/ports/secondary"
)

// SyncServiceImpl implements the SyncService interface. It reconciles
// drift between the tracker and the forum one project at a time: an open
// issue forces its thread unlocked, a closed discovered issue forces its
// thread locked and archived, everything else is left untouched.
type SyncServiceImpl struct {
	tracker  secondary.TrackerClient
	chat     secondary.ChatClient
	issues   *IssueSource
	threads  *ThreadSource
	syncLog  secondary.SyncLogRepository
	prefixes []string
	logger   *log.Logger
}

// NewSyncService creates a new SyncService with injected dependencies.
func NewSyncService(
	tracker secondary.TrackerClient,
	chat secondary.ChatClient,
	links secondary.LinkRepository,
	syncLog secondary.SyncLogRepository,
	prefixes []string,
	logger *log.Logger,
) *SyncServiceImpl {
	return &SyncServiceImpl{
		tracker:  tracker,
		chat:     chat,
		issues:   NewIssueSource(tracker),
		threads:  NewThreadSource(chat, links),
		syncLog:  syncLog,
		prefixes: prefixes,
		logger:   logger,
	}
}

// SyncProject runs a single reconciliation pass for a project. All
// per-cycle state (issue snapshot, thread snapshot, link discoveries) is
// derived fresh and discarded at the end of the pass.
func (s *SyncServiceImpl) SyncProject(ctx context.Context, project primary.Project) (*primary.SyncReport, error) {
	guildID, forumID, err := parseProjectIDs(project)
	if err != nil {
		return nil, err
	}

	report := &primary.SyncReport{Project: project.Label()}

	// Snapshot of currently-open linked issues. This completes before the
	// thread sweep so the sweep sees a fixed open-id set for the cycle.
	open, err := s.issues.ListLinkedIssues(ctx, project.GithubOwner, project.GithubRepo, secondary.IssueStateOpen)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", project.Label(), err)
	}
	report.OpenIssues = len(open)

	openByThread := make(map[uint64][]LinkedIssue, len(open))
	for _, linked := range open {
		openByThread[linked.ThreadID] = append(openByThread[linked.ThreadID], linked)
	}

	for threadID, group := range openByThread {
		if len(group) > 1 {
			// Two open issues claim the same thread. Guessing which is
			// canonical risks acting on the wrong one; skip the id.
			report.Indeterminate++
			s.logger.Printf("project %s: %d open issues share thread id %d, skipping",
				project.Label(), len(group), threadID)
			continue
		}
		s.syncOpenIssue(ctx, project, threadID, group[0], report)
	}

	threads, err := s.threads.ListForumThreads(ctx, guildID, forumID)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", project.Label(), err)
	}

	for _, thread := range threads {
		if !discovery.HasManagedPrefix(thread.Name, s.prefixes) {
			continue
		}
		if thread.Locked || thread.Archived {
			continue
		}
		// Threads with an open issue stay unlocked; indeterminate ids are
		// in this set too and are likewise left alone.
		if _, isOpen := openByThread[thread.ID]; isOpen {
			continue
		}
		s.syncUnlinkedThread(ctx, project, thread, report)
	}

	return report, nil
}

// syncOpenIssue ensures the thread linked to an open issue is unlocked
// and unarchived. A missing thread is a counted outcome, not an error.
func (s *SyncServiceImpl) syncOpenIssue(ctx context.Context, project primary.Project, threadID uint64, linked LinkedIssue, report *primary.SyncReport) {
	thread, err := s.chat.GetThread(ctx, threadID)
	if errors.Is(err, secondary.ErrNotFound) {
		report.ThreadsMissing++
		s.logger.Printf("project %s: thread %d not found for open issue #%d (%s)",
			project.Label(), threadID, linked.Issue.Number, linked.Issue.URL)
		return
	}
	if err != nil {
		s.threadFailed(ctx, project, threadID, linked.Issue.Number, report,
			fmt.Errorf("failed to fetch thread: %w", err))
		return
	}
	report.ThreadsFound++

	if !thread.Locked && !thread.Archived {
		return
	}

	// Message before mutation: a reader should see the notification in
	// context even if the subsequent edit fails.
	if err := s.chat.SendMessage(ctx, threadID, discovery.MsgIssueReopened); err != nil {
		s.threadFailed(ctx, project, threadID, linked.Issue.Number, report,
			fmt.Errorf("failed to send reopened notification: %w", err))
		return
	}
	unlocked := false
	if err := s.chat.EditThread(ctx, threadID, secondary.ThreadPatch{Locked: &unlocked, Archived: &unlocked}); err != nil {
		s.threadFailed(ctx, project, threadID, linked.Issue.Number, report,
			fmt.Errorf("failed to unlock thread: %w", err))
		return
	}

	report.Reopened++
	s.logger.Printf("project %s: unlocked thread %d for reopened issue #%d",
		project.Label(), threadID, linked.Issue.Number)
	s.recordAction(ctx, project, secondary.SyncActionReopen, threadID, linked.Issue.Number, "")
}

// syncUnlinkedThread checks whether an unlocked managed thread without an
// open issue references a since-closed issue, and locks it if so.
func (s *SyncServiceImpl) syncUnlinkedThread(ctx context.Context, project primary.Project, thread secondary.ThreadRecord, report *primary.SyncReport) {
	link, err := s.threads.DiscoverLinkedIssue(ctx, thread.ID)
	if err != nil {
		s.threadFailed(ctx, project, thread.ID, 0, report, err)
		return
	}
	if link == nil {
		return
	}

	issue, err := s.lookupDiscovered(ctx, project, thread.ID, link)
	if err != nil {
		s.threadFailed(ctx, project, thread.ID, link.IssueNumber, report,
			fmt.Errorf("failed to check issue #%d: %w", link.IssueNumber, err))
		return
	}
	if issue == nil || issue.State != secondary.IssueStateClosed {
		return
	}

	if err := s.chat.SendMessage(ctx, thread.ID, discovery.MsgIssueClosed); err != nil {
		s.threadFailed(ctx, project, thread.ID, issue.Number, report,
			fmt.Errorf("failed to send closed notification: %w", err))
		return
	}
	locked := true
	if err := s.chat.EditThread(ctx, thread.ID, secondary.ThreadPatch{Locked: &locked, Archived: &locked}); err != nil {
		s.threadFailed(ctx, project, thread.ID, issue.Number, report,
			fmt.Errorf("failed to lock thread: %w", err))
		return
	}

	report.Closed++
	s.logger.Printf("project %s: locked and archived thread %d (%s), issue #%d is closed",
		project.Label(), thread.ID, thread.Name, issue.Number)
	s.recordAction(ctx, project, secondary.SyncActionClose, thread.ID, issue.Number, thread.Name)
}

// lookupDiscovered re-fetches the discovered issue's current state. A
// cached link pointing at a vanished issue is invalidated and the thread
// is re-scanned once within the same cycle.
func (s *SyncServiceImpl) lookupDiscovered(ctx context.Context, project primary.Project, threadID uint64, link *DiscoveredLink) (*secondary.IssueRecord, error) {
	issue, err := s.tracker.GetIssue(ctx, project.GithubOwner, project.GithubRepo, link.IssueNumber)
	if err == nil {
		return issue, nil
	}
	if !errors.Is(err, secondary.ErrNotFound) {
		return nil, err
	}
	if !link.FromCache {
		return nil, nil
	}

	if err := s.threads.InvalidateLink(ctx, threadID); err != nil {
		s.logger.Printf("project %s: failed to invalidate stale link for thread %d: %v",
			project.Label(), threadID, err)
	}
	rescanned, err := s.threads.ScanForLink(ctx, threadID)
	if err != nil || rescanned == nil {
		return nil, err
	}
	issue, err = s.tracker.GetIssue(ctx, project.GithubOwner, project.GithubRepo, rescanned.IssueNumber)
	if errors.Is(err, secondary.ErrNotFound) {
		return nil, nil
	}
	return issue, err
}

// threadFailed logs a per-thread failure and moves on; one thread's
// failure never aborts the rest of the project's cycle.
func (s *SyncServiceImpl) threadFailed(ctx context.Context, project primary.Project, threadID uint64, issueNumber int64, report *primary.SyncReport, err error) {
	report.ThreadErrors++
	s.logger.Printf("project %s: thread %d: %v", project.Label(), threadID, err)
	s.recordAction(ctx, project, secondary.SyncActionError, threadID, issueNumber, err.Error())
}

func (s *SyncServiceImpl) recordAction(ctx context.Context, project primary.Project, action string, threadID uint64, issueNumber int64, detail string) {
	if s.syncLog == nil {
		return
	}
	entry := &secondary.SyncLogRecord{
		Project:     project.Label(),
		Action:      action,
		ThreadID:    threadID,
		IssueNumber: issueNumber,
		Detail:      detail,
	}
	if err := s.syncLog.Append(ctx, entry); err != nil {
		s.logger.Printf("project %s: failed to record %s action for thread %d: %v",
			project.Label(), action, threadID, err)
	}
}

// Ensure SyncServiceImpl implements the interface
var _ primary.SyncService = (*SyncServiceImpl)(nil)
