package app

import (
	"context"
	"fmt"

	"github.com/example/bridgebot/internal/ports/primary"
	"github.com/example/bridgebot/internal/ports/secondary"
)

// SyncLogServiceImpl implements the SyncLogService interface.
type SyncLogServiceImpl struct {
	logRepo secondary.SyncLogRepository
}

// NewSyncLogService creates a new SyncLogService with injected dependencies.
func NewSyncLogService(logRepo secondary.SyncLogRepository) *SyncLogServiceImpl {
	return &SyncLogServiceImpl{logRepo: logRepo}
}

// ListActions retrieves recorded sync actions matching the filters.
func (s *SyncLogServiceImpl) ListActions(ctx context.Context, filters primary.ActionFilters) ([]*primary.ActionEntry, error) {
	records, err := s.logRepo.List(ctx, secondary.SyncLogFilters{
		Project: filters.Project,
		Action:  filters.Action,
		Limit:   filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sync actions: %w", err)
	}

	entries := make([]*primary.ActionEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.ActionEntry{
			ID:          r.ID,
			Project:     r.Project,
			Action:      r.Action,
			ThreadID:    r.ThreadID,
			IssueNumber: r.IssueNumber,
			Detail:      r.Detail,
			CreatedAt:   r.CreatedAt,
		}
	}
	return entries, nil
}

// PruneActions deletes entries older than the given number of days.
func (s *SyncLogServiceImpl) PruneActions(ctx context.Context, olderThanDays int) (int, error) {
	return s.logRepo.PruneOlderThan(ctx, olderThanDays)
}

// Ensure SyncLogServiceImpl implements the interface
var _ primary.SyncLogService = (*SyncLogServiceImpl)(nil)
