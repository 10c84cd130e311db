package app

import (
	"context"
	"testing"

	"github.com/example/bridgebot/internal/core/discovery"
	"github.com/example/bridgebot/internal/ports/secondary"
)

func TestThreadSourceListsOnlyForumThreads(t *testing.T) {
	chat := newMockChatClient()
	chat.addThread(secondary.ThreadRecord{ID: 1, ParentID: 2000, Name: "[BUG] in forum"})
	chat.addThread(secondary.ThreadRecord{ID: 2, ParentID: 3000, Name: "[BUG] elsewhere"})
	source := NewThreadSource(chat, newMockLinkRepository())

	threads, err := source.ListForumThreads(context.Background(), 1000, 2000)
	if err != nil {
		t.Fatalf("ListForumThreads failed: %v", err)
	}
	if len(threads) != 1 || threads[0].ID != 1 {
		t.Errorf("threads = %v, want only thread 1", threads)
	}
}

func TestScanForLinkFindsBotNotification(t *testing.T) {
	chat := newMockChatClient()
	links := newMockLinkRepository()
	chat.messages[10] = []secondary.MessageRecord{
		{AuthorIsBot: false, Content: "https://github.com/acme/widgets/issues/1 from a user"},
		{
			AuthorIsBot: true,
			Embeds:      []secondary.EmbedRecord{{Title: "Unrelated embed", Description: "https://github.com/acme/widgets/issues/2"}},
		},
		notificationMessage("acme", "widgets", 42, discovery.MsgIssueCreated),
	}
	source := NewThreadSource(chat, links)

	link, err := source.ScanForLink(context.Background(), 10)
	if err != nil {
		t.Fatalf("ScanForLink failed: %v", err)
	}
	if link == nil {
		t.Fatal("expected a discovered link")
	}
	if link.IssueNumber != 42 {
		t.Errorf("IssueNumber = %d, want 42: user messages and unrelated embeds must be ignored", link.IssueNumber)
	}
	if links.puts != 1 {
		t.Errorf("puts = %d, want 1 (scan result cached)", links.puts)
	}
}

func TestScanForLinkReturnsNilWithoutNotification(t *testing.T) {
	chat := newMockChatClient()
	chat.messages[11] = []secondary.MessageRecord{
		{AuthorIsBot: true, Content: "plain bot message"},
	}
	source := NewThreadSource(chat, newMockLinkRepository())

	link, err := source.ScanForLink(context.Background(), 11)
	if err != nil {
		t.Fatalf("ScanForLink failed: %v", err)
	}
	if link != nil {
		t.Errorf("link = %v, want nil", link)
	}
}

func TestDiscoverLinkedIssuePrefersCache(t *testing.T) {
	chat := newMockChatClient()
	links := newMockLinkRepository()
	links.Put(context.Background(), &secondary.LinkRecord{ThreadID: 12, IssueNumber: 7, IssueURL: "https://github.com/acme/widgets/issues/7"})
	source := NewThreadSource(chat, links)

	link, err := source.DiscoverLinkedIssue(context.Background(), 12)
	if err != nil {
		t.Fatalf("DiscoverLinkedIssue failed: %v", err)
	}
	if link == nil || !link.FromCache || link.IssueNumber != 7 {
		t.Errorf("link = %+v, want cached issue 7", link)
	}
	if chat.listMsgCalls != 0 {
		t.Errorf("listMsgCalls = %d, want 0", chat.listMsgCalls)
	}
}
