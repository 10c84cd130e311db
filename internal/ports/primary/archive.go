package primary

import "context"

// ArchiveService defines the primary port for the one-shot archive sweep.
type ArchiveService interface {
	// ArchiveLockedThreads archives managed threads that are locked but
	// not yet archived, and returns how many it archived. Locked threads
	// without a managed prefix are left alone.
	ArchiveLockedThreads(ctx context.Context, project Project) (int, error)
}
