package cli

import (
	"fmt"
	"os"

	"github.com/example/bridgebot/internal/config"
	"github.com/example/bridgebot/internal/ports/primary"
	"github.com/example/bridgebot/internal/wire"
)

// loadConfigured loads the config file and hands it to the wire layer so
// service construction can see the project list and sync settings.
func loadConfigured(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	wire.Configure(cfg)
	return cfg, nil
}

// selectProjects returns the configured projects as port types, filtered
// down to one project when name is non-empty.
func selectProjects(cfg *config.Config, name string) ([]primary.Project, error) {
	projects := make([]primary.Project, 0, len(cfg.Projects))
	for _, p := range cfg.Projects {
		if name != "" && p.Name != name {
			continue
		}
		projects = append(projects, wire.ProjectFromConfig(p))
	}
	if len(projects) == 0 {
		if name != "" {
			return nil, fmt.Errorf("no project named %q in config", name)
		}
		return nil, fmt.Errorf("config has no projects")
	}
	return projects, nil
}

// requireChatToken ensures the DISCORD_TOKEN env var is set before any
// command that talks to the forum runs. The tracker token is optional
// (unauthenticated API access works at reduced rate limits).
func requireChatToken() error {
	if os.Getenv("DISCORD_TOKEN") == "" {
		return fmt.Errorf("DISCORD_TOKEN environment variable is not set")
	}
	return nil
}
