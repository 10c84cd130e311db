package app

import (
	"context"
	"fmt"
	"log"

	"github.com/example/bridgebot/internal/core/discovery"
	"github.com/example/bridgebot/internal/ports/primary"
	"github.com/example/bridgebot/internal/ports/secondary"
)

// ArchiveServiceImpl implements the ArchiveService interface. It performs
// the one-shot cleanup sweep for threads that were locked by an earlier
// run but never archived.
type ArchiveServiceImpl struct {
	chat     secondary.ChatClient
	threads  *ThreadSource
	prefixes []string
	logger   *log.Logger
}

// NewArchiveService creates a new ArchiveService with injected dependencies.
func NewArchiveService(chat secondary.ChatClient, links secondary.LinkRepository, prefixes []string, logger *log.Logger) *ArchiveServiceImpl {
	return &ArchiveServiceImpl{
		chat:     chat,
		threads:  NewThreadSource(chat, links),
		prefixes: prefixes,
		logger:   logger,
	}
}

// ArchiveLockedThreads archives managed threads that are locked but not
// yet archived. Returns the number archived.
func (s *ArchiveServiceImpl) ArchiveLockedThreads(ctx context.Context, project primary.Project) (int, error) {
	guildID, forumID, err := parseProjectIDs(project)
	if err != nil {
		return 0, err
	}

	threads, err := s.threads.ListForumThreads(ctx, guildID, forumID)
	if err != nil {
		return 0, fmt.Errorf("project %s: %w", project.Label(), err)
	}

	archived := 0
	for _, thread := range threads {
		if !discovery.HasManagedPrefix(thread.Name, s.prefixes) {
			continue
		}
		if !thread.Locked || thread.Archived {
			continue
		}

		flag := true
		if err := s.chat.EditThread(ctx, thread.ID, secondary.ThreadPatch{Archived: &flag}); err != nil {
			s.logger.Printf("project %s: failed to archive thread %d (%s): %v",
				project.Label(), thread.ID, thread.Name, err)
			continue
		}
		archived++
		s.logger.Printf("project %s: archived locked thread %d (%s)", project.Label(), thread.ID, thread.Name)
	}

	return archived, nil
}

// Ensure ArchiveServiceImpl implements the interface
var _ primary.ArchiveService = (*ArchiveServiceImpl)(nil)
