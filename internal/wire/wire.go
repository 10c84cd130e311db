// Package wire provides dependency injection for the bridgebot application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/example/bridgebot/internal/adapters/discord"
	"github.com/example/bridgebot/internal/adapters/github"
	"github.com/example/bridgebot/internal/adapters/sqlite"
	"github.com/example/bridgebot/internal/app"
	"github.com/example/bridgebot/internal/config"
	"github.com/example/bridgebot/internal/db"
	"github.com/example/bridgebot/internal/ports/primary"
)

var (
	syncService    primary.SyncService
	auditService   primary.AuditService
	archiveService primary.ArchiveService
	logService     primary.SyncLogService
	logger         *log.Logger
	once           sync.Once

	loaded *config.Config
)

// Configure records the loaded configuration used to build the services.
// Commands must call it before the first service accessor; without it the
// services fall back to default thread prefixes.
func Configure(cfg *config.Config) {
	loaded = cfg
}

// SyncService returns the singleton SyncService instance.
func SyncService() primary.SyncService {
	once.Do(initServices)
	return syncService
}

// AuditService returns the singleton AuditService instance.
func AuditService() primary.AuditService {
	once.Do(initServices)
	return auditService
}

// ArchiveService returns the singleton ArchiveService instance.
func ArchiveService() primary.ArchiveService {
	once.Do(initServices)
	return archiveService
}

// SyncLogService returns the singleton SyncLogService instance.
func SyncLogService() primary.SyncLogService {
	once.Do(initServices)
	return logService
}

// Scheduler builds a scheduler over the configured projects. Requires a
// prior Configure call.
func Scheduler() (*app.Scheduler, error) {
	if loaded == nil {
		return nil, fmt.Errorf("no configuration loaded")
	}
	once.Do(initServices)

	projects := make([]primary.Project, 0, len(loaded.Projects))
	for _, p := range loaded.Projects {
		projects = append(projects, ProjectFromConfig(p))
	}
	return app.NewScheduler(syncService, projects, loaded.SyncConfig(), logger), nil
}

// ProjectFromConfig converts a config project to its port representation.
func ProjectFromConfig(p config.Project) primary.Project {
	return primary.Project{
		Name:          p.Name,
		GuildID:       p.DiscordGuildID,
		ForumID:       p.DiscordForumID,
		GithubOwner:   p.GithubOwner,
		GithubRepo:    p.GithubRepo,
		AllowedRoleID: p.AllowedRoleID,
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	linkRepo := sqlite.NewLinkRepository(database)
	syncLogRepo := sqlite.NewSyncLogRepository(database)

	// Remote clients. Tokens come from the environment; commands that
	// need the chat token validate its presence before reaching here.
	tracker := github.NewClient(os.Getenv("GITHUB_TOKEN"))
	chat := discord.NewClient(os.Getenv("DISCORD_TOKEN"))

	prefixes := config.DefaultThreadPrefixes
	if loaded != nil {
		prefixes = loaded.SyncConfig().ThreadPrefixes
	}

	logger = log.New(os.Stderr, "", log.LstdFlags)

	// Create services (primary ports implementation)
	syncService = app.NewSyncService(tracker, chat, linkRepo, syncLogRepo, prefixes, logger)
	auditService = app.NewAuditService(tracker, chat, linkRepo)
	archiveService = app.NewArchiveService(chat, linkRepo, prefixes, logger)
	logService = app.NewSyncLogService(syncLogRepo)
}
