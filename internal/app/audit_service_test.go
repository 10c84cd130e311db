package app

import (
	"context"
	"testing"

	"github.com/example/bridgebot/internal/ports/secondary"
)

func TestAuditProject(t *testing.T) {
	tracker := newMockTrackerClient()
	chat := newMockChatClient()
	tracker.searchResults[secondary.IssueStateOpen] = []secondary.IssueRecord{
		{Number: 1, Title: "[BUG] fine [100]"},
		{Number: 2, Title: "[BUG] wrongly locked [200]"},
		{Number: 3, Title: "[BUG] gone [300]"},
	}
	chat.addThread(secondary.ThreadRecord{ID: 100, ParentID: 2000, Name: "[BUG] fine"})
	chat.addThread(secondary.ThreadRecord{ID: 200, ParentID: 2000, Name: "[BUG] wrongly locked", Locked: true})

	service := NewAuditService(tracker, chat, newMockLinkRepository())
	report, err := service.AuditProject(context.Background(), testProject)
	if err != nil {
		t.Fatalf("AuditProject failed: %v", err)
	}

	if report.OpenIssueThreads != 3 {
		t.Errorf("OpenIssueThreads = %d, want 3", report.OpenIssueThreads)
	}
	if report.ManagedUnlocked != 1 {
		t.Errorf("ManagedUnlocked = %d, want 1", report.ManagedUnlocked)
	}
	if report.ManagedLocked != 1 {
		t.Errorf("ManagedLocked = %d, want 1", report.ManagedLocked)
	}
	if len(report.WrongState) != 1 || report.WrongState[0].ThreadID != 200 {
		t.Errorf("WrongState = %v, want thread 200", report.WrongState)
	}
	if len(report.MissingThreads) != 1 || report.MissingThreads[0].ThreadID != 300 {
		t.Errorf("MissingThreads = %v, want thread 300", report.MissingThreads)
	}
	if report.Clean() {
		t.Error("report with findings must not be clean")
	}
}

func TestAuditProjectClean(t *testing.T) {
	tracker := newMockTrackerClient()
	chat := newMockChatClient()
	tracker.searchResults[secondary.IssueStateOpen] = []secondary.IssueRecord{
		{Number: 1, Title: "[BUG] fine [100]"},
	}
	chat.addThread(secondary.ThreadRecord{ID: 100, ParentID: 2000, Name: "[BUG] fine"})

	service := NewAuditService(tracker, chat, newMockLinkRepository())
	report, err := service.AuditProject(context.Background(), testProject)
	if err != nil {
		t.Fatalf("AuditProject failed: %v", err)
	}
	if !report.Clean() {
		t.Errorf("report = %+v, want clean", report)
	}
}

func TestInspectProject(t *testing.T) {
	tracker := newMockTrackerClient()
	tracker.searchResults[secondary.IssueStateOpen] = []secondary.IssueRecord{
		{Number: 1, Title: "[BUG] open [100]", State: secondary.IssueStateOpen},
		{Number: 2, Title: "no id"},
	}
	tracker.searchResults[secondary.IssueStateClosed] = []secondary.IssueRecord{
		{Number: 3, Title: "[BUG] closed [200]", State: secondary.IssueStateClosed},
	}

	service := NewAuditService(tracker, newMockChatClient(), newMockLinkRepository())
	report, err := service.InspectProject(context.Background(), testProject)
	if err != nil {
		t.Fatalf("InspectProject failed: %v", err)
	}

	if report.TotalIssues != 2 {
		t.Errorf("TotalIssues = %d, want 2", report.TotalIssues)
	}
	if len(report.Linked) != 2 {
		t.Fatalf("Linked = %v, want 2 entries", report.Linked)
	}
	if report.Linked[0].ThreadID != 100 || report.Linked[1].ThreadID != 200 {
		t.Errorf("Linked thread ids = %d, %d, want 100 and 200",
			report.Linked[0].ThreadID, report.Linked[1].ThreadID)
	}
}
