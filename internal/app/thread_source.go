package app

import (
	"context"
	"fmt"

	"github.com/example/bridgebot/internal/core/discovery"
	"github.com/example/bridgebot/internal/ports/secondary"
)

// ThreadSource queries the chat platform for forum threads and
// reconstructs thread→issue links from notification messages the bot
// previously posted. Discovered links are cached in the link repository
// to avoid re-scanning message history every cycle.
type ThreadSource struct {
	chat  secondary.ChatClient
	links secondary.LinkRepository
}

// NewThreadSource creates a new ThreadSource.
func NewThreadSource(chat secondary.ChatClient, links secondary.LinkRepository) *ThreadSource {
	return &ThreadSource{chat: chat, links: links}
}

// DiscoveredLink is a thread→issue reference reconstructed from a
// notification artifact (or the cache layered over them).
type DiscoveredLink struct {
	IssueNumber int64
	IssueURL    string
	FromCache   bool
}

// ListForumThreads returns the guild's active threads whose parent is the
// configured forum channel.
func (s *ThreadSource) ListForumThreads(ctx context.Context, guildID, forumID uint64) ([]secondary.ThreadRecord, error) {
	threads, err := s.chat.ListActiveThreads(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active threads in guild %d: %w", guildID, err)
	}

	forum := make([]secondary.ThreadRecord, 0, len(threads))
	for _, thread := range threads {
		if thread.ParentID == forumID {
			forum = append(forum, thread)
		}
	}
	return forum, nil
}

// DiscoverLinkedIssue returns the issue a thread's notification messages
// reference, consulting the cache before scanning. Returns nil when no
// link exists within the scan window.
func (s *ThreadSource) DiscoverLinkedIssue(ctx context.Context, threadID uint64) (*DiscoveredLink, error) {
	cached, err := s.links.Get(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to read link cache for thread %d: %w", threadID, err)
	}
	if cached != nil {
		return &DiscoveredLink{
			IssueNumber: cached.IssueNumber,
			IssueURL:    cached.IssueURL,
			FromCache:   true,
		}, nil
	}
	return s.ScanForLink(ctx, threadID)
}

// ScanForLink fetches a bounded window of recent messages and searches
// bot-authored notification embeds for an issue URL. This is best-effort:
// a notification older than the window is undiscoverable here. A found
// link is written to the cache.
func (s *ThreadSource) ScanForLink(ctx context.Context, threadID uint64) (*DiscoveredLink, error) {
	messages, err := s.chat.ListMessages(ctx, threadID, discovery.MessageFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages in thread %d: %w", threadID, err)
	}

	for _, message := range messages {
		if !message.AuthorIsBot {
			continue
		}
		for _, embed := range message.Embeds {
			if !discovery.IsNotificationTitle(embed.Title) {
				continue
			}
			url, ok := discovery.FindIssueURL(embed.Description)
			if !ok {
				continue
			}
			number, ok := discovery.IssueNumberFromURL(url)
			if !ok {
				continue
			}

			link := &DiscoveredLink{IssueNumber: number, IssueURL: url}
			if err := s.links.Put(ctx, &secondary.LinkRecord{
				ThreadID:    threadID,
				IssueNumber: number,
				IssueURL:    url,
			}); err != nil {
				// Cache write failure degrades to re-scanning next cycle.
				return link, nil
			}
			return link, nil
		}
	}
	return nil, nil
}

// InvalidateLink drops the cached link for a thread. Used when the cached
// issue turns out not to exist anymore.
func (s *ThreadSource) InvalidateLink(ctx context.Context, threadID uint64) error {
	return s.links.Delete(ctx, threadID)
}
