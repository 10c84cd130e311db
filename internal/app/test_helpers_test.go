package app

import (
	"context"
	"fmt"

	"github.com/example/bridgebot/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.TrackerClient     = (*mockTrackerClient)(nil)
	_ secondary.ChatClient        = (*mockChatClient)(nil)
	_ secondary.LinkRepository    = (*mockLinkRepository)(nil)
	_ secondary.SyncLogRepository = (*mockSyncLogRepository)(nil)
)

// mockTrackerClient implements secondary.TrackerClient for testing.
type mockTrackerClient struct {
	searchResults map[string][]secondary.IssueRecord
	issues        map[int64]secondary.IssueRecord
	searchErr     error
	getErr        map[int64]error
	searchCalls   int
	getCalls      int
}

func newMockTrackerClient() *mockTrackerClient {
	return &mockTrackerClient{
		searchResults: make(map[string][]secondary.IssueRecord),
		issues:        make(map[int64]secondary.IssueRecord),
		getErr:        make(map[int64]error),
	}
}

func (m *mockTrackerClient) SearchIssues(ctx context.Context, owner, repo, state string) ([]secondary.IssueRecord, error) {
	m.searchCalls++
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.searchResults[state], nil
}

func (m *mockTrackerClient) GetIssue(ctx context.Context, owner, repo string, number int64) (*secondary.IssueRecord, error) {
	m.getCalls++
	if err := m.getErr[number]; err != nil {
		return nil, err
	}
	issue, ok := m.issues[number]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	return &issue, nil
}

// chatCall records one mutating chat operation, in call order.
type chatCall struct {
	op       string // "send" or "edit"
	threadID uint64
	content  string
	patch    secondary.ThreadPatch
}

// mockChatClient implements secondary.ChatClient for testing. EditThread
// applies the patch to the stored thread so a second reconciliation pass
// observes the corrected state.
type mockChatClient struct {
	threads      map[uint64]*secondary.ThreadRecord
	messages     map[uint64][]secondary.MessageRecord
	calls        []chatCall
	listErr      error
	getThreadErr map[uint64]error
	sendErr      map[uint64]error
	editErr      map[uint64]error
	listMsgCalls int
}

func newMockChatClient() *mockChatClient {
	return &mockChatClient{
		threads:      make(map[uint64]*secondary.ThreadRecord),
		messages:     make(map[uint64][]secondary.MessageRecord),
		getThreadErr: make(map[uint64]error),
		sendErr:      make(map[uint64]error),
		editErr:      make(map[uint64]error),
	}
}

func (m *mockChatClient) addThread(thread secondary.ThreadRecord) {
	copied := thread
	m.threads[thread.ID] = &copied
}

func (m *mockChatClient) ListActiveThreads(ctx context.Context, guildID uint64) ([]secondary.ThreadRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []secondary.ThreadRecord
	for _, thread := range m.threads {
		if !thread.Archived {
			out = append(out, *thread)
		}
	}
	return out, nil
}

func (m *mockChatClient) GetThread(ctx context.Context, threadID uint64) (*secondary.ThreadRecord, error) {
	if err := m.getThreadErr[threadID]; err != nil {
		return nil, err
	}
	thread, ok := m.threads[threadID]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	copied := *thread
	return &copied, nil
}

func (m *mockChatClient) EditThread(ctx context.Context, threadID uint64, patch secondary.ThreadPatch) error {
	if err := m.editErr[threadID]; err != nil {
		return err
	}
	m.calls = append(m.calls, chatCall{op: "edit", threadID: threadID, patch: patch})
	thread, ok := m.threads[threadID]
	if !ok {
		return secondary.ErrNotFound
	}
	if patch.Locked != nil {
		thread.Locked = *patch.Locked
	}
	if patch.Archived != nil {
		thread.Archived = *patch.Archived
	}
	return nil
}

func (m *mockChatClient) SendMessage(ctx context.Context, threadID uint64, content string) error {
	if err := m.sendErr[threadID]; err != nil {
		return err
	}
	m.calls = append(m.calls, chatCall{op: "send", threadID: threadID, content: content})
	return nil
}

func (m *mockChatClient) ListMessages(ctx context.Context, threadID uint64, limit int) ([]secondary.MessageRecord, error) {
	m.listMsgCalls++
	msgs := m.messages[threadID]
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

// callsFor returns the mutating calls made against one thread.
func (m *mockChatClient) callsFor(threadID uint64) []chatCall {
	var out []chatCall
	for _, call := range m.calls {
		if call.threadID == threadID {
			out = append(out, call)
		}
	}
	return out
}

// mockLinkRepository implements secondary.LinkRepository in memory.
type mockLinkRepository struct {
	links   map[uint64]*secondary.LinkRecord
	getErr  error
	puts    int
	deletes int
}

func newMockLinkRepository() *mockLinkRepository {
	return &mockLinkRepository{links: make(map[uint64]*secondary.LinkRecord)}
}

func (m *mockLinkRepository) Get(ctx context.Context, threadID uint64) (*secondary.LinkRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	link, ok := m.links[threadID]
	if !ok {
		return nil, nil
	}
	copied := *link
	return &copied, nil
}

func (m *mockLinkRepository) Put(ctx context.Context, link *secondary.LinkRecord) error {
	m.puts++
	copied := *link
	m.links[link.ThreadID] = &copied
	return nil
}

func (m *mockLinkRepository) Delete(ctx context.Context, threadID uint64) error {
	m.deletes++
	delete(m.links, threadID)
	return nil
}

// mockSyncLogRepository implements secondary.SyncLogRepository in memory.
type mockSyncLogRepository struct {
	entries []*secondary.SyncLogRecord
}

func newMockSyncLogRepository() *mockSyncLogRepository {
	return &mockSyncLogRepository{}
}

func (m *mockSyncLogRepository) Append(ctx context.Context, entry *secondary.SyncLogRecord) error {
	entry.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockSyncLogRepository) List(ctx context.Context, filters secondary.SyncLogFilters) ([]*secondary.SyncLogRecord, error) {
	var out []*secondary.SyncLogRecord
	for i := len(m.entries) - 1; i >= 0; i-- {
		entry := m.entries[i]
		if filters.Project != "" && entry.Project != filters.Project {
			continue
		}
		if filters.Action != "" && entry.Action != filters.Action {
			continue
		}
		out = append(out, entry)
		if filters.Limit > 0 && len(out) >= filters.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockSyncLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	return 0, nil
}

func (m *mockSyncLogRepository) actionsOf(kind string) []*secondary.SyncLogRecord {
	var out []*secondary.SyncLogRecord
	for _, entry := range m.entries {
		if entry.Action == kind {
			out = append(out, entry)
		}
	}
	return out
}

// notificationMessage builds a bot message carrying an issue-created embed
// pointing at the given issue number.
func notificationMessage(owner, repo string, number int64, title string) secondary.MessageRecord {
	return secondary.MessageRecord{
		AuthorIsBot: true,
		Embeds: []secondary.EmbedRecord{
			{
				Title:       title,
				Description: fmt.Sprintf("Issue: https://github.com/%s/%s/issues/%d", owner, repo, number),
			},
		},
	}
}
