package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned by adapters when the remote system reports that
// the requested entity (thread, channel, issue) does not exist or is
// inaccessible. Callers treat this as a normal outcome, not a failure.
var ErrNotFound = errors.New("not found")

// ChatClient defines the secondary port for the chat platform.
type ChatClient interface {
	// ListActiveThreads returns all active (non-archived) threads in a
	// guild, across all parent channels. Callers filter by parent.
	ListActiveThreads(ctx context.Context, guildID uint64) ([]ThreadRecord, error)

	// GetThread fetches a single thread channel.
	// Returns ErrNotFound if the thread was deleted or is inaccessible.
	GetThread(ctx context.Context, threadID uint64) (*ThreadRecord, error)

	// EditThread updates thread metadata. Nil fields are left unchanged.
	EditThread(ctx context.Context, threadID uint64, patch ThreadPatch) error

	// SendMessage posts a plain-text message into a thread.
	SendMessage(ctx context.Context, threadID uint64, content string) error

	// ListMessages returns up to limit recent messages from a thread,
	// newest first.
	ListMessages(ctx context.Context, threadID uint64, limit int) ([]MessageRecord, error)
}

// ThreadRecord represents a forum thread at the port boundary.
type ThreadRecord struct {
	ID       uint64
	ParentID uint64
	Name     string
	Locked   bool
	Archived bool
}

// ThreadPatch holds the mutable thread flags. Nil means "leave unchanged".
type ThreadPatch struct {
	Locked   *bool
	Archived *bool
}

// MessageRecord represents a chat message at the port boundary. Only the
// fields the discovery scan inspects are carried.
type MessageRecord struct {
	AuthorIsBot bool
	Content     string
	Embeds      []EmbedRecord
}

// EmbedRecord is a structured notification payload attached to a message.
type EmbedRecord struct {
	Title       string
	Description string
}
