package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "bridgebot.json"

// Sync defaults applied when the sync section is absent or partial.
const (
	DefaultSyncEnabled         = true
	DefaultSyncIntervalSeconds = 60
)

// DefaultThreadPrefixes marks the thread titles the bridge manages.
var DefaultThreadPrefixes = []string{"[BUG]", "[FEATURE]", "[QUESTION]", "[FEEDBACK]"}

// Config represents the bridgebot configuration. Immutable after load.
type Config struct {
	LogLevel string        `json:"log_level,omitempty"`
	Projects []Project     `json:"projects"`
	Sync     *SyncSettings `json:"sync,omitempty"`
}

// Project maps one forum channel to one tracker repository.
type Project struct {
	Name           string `json:"name,omitempty"`
	DiscordGuildID string `json:"discord_guild_id"`
	DiscordForumID string `json:"discord_forum_id"`
	GithubOwner    string `json:"github_owner"`
	GithubRepo     string `json:"github_repo"`
	AllowedRoleID  string `json:"allowed_role_id,omitempty"`
}

// SyncSettings controls the reconciliation scheduler.
type SyncSettings struct {
	Enabled         *bool    `json:"enabled,omitempty"`
	IntervalSeconds uint64   `json:"interval_seconds,omitempty"`
	ThreadPrefixes  []string `json:"thread_prefixes,omitempty"`
}

// LoadConfig reads and validates the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Projects) == 0 {
		return fmt.Errorf("config has no projects")
	}
	for i, p := range c.Projects {
		if p.DiscordGuildID == "" || p.DiscordForumID == "" {
			return fmt.Errorf("project %d (%s): discord_guild_id and discord_forum_id are required", i+1, p.Name)
		}
		if p.GithubOwner == "" || p.GithubRepo == "" {
			return fmt.Errorf("project %d (%s): github_owner and github_repo are required", i+1, p.Name)
		}
	}
	return nil
}

// FindProject returns the project configured for the given guild and forum
// channel, or nil if none matches.
func (c *Config) FindProject(guildID, forumID string) *Project {
	for i := range c.Projects {
		p := &c.Projects[i]
		if p.DiscordGuildID == guildID && p.DiscordForumID == forumID {
			return p
		}
	}
	return nil
}

// SyncConfig returns the sync settings with defaults filled in.
func (c *Config) SyncConfig() SyncSettings {
	settings := SyncSettings{
		IntervalSeconds: DefaultSyncIntervalSeconds,
		ThreadPrefixes:  DefaultThreadPrefixes,
	}
	if c.Sync == nil {
		return settings
	}
	if c.Sync.Enabled != nil {
		enabled := *c.Sync.Enabled
		settings.Enabled = &enabled
	}
	if c.Sync.IntervalSeconds > 0 {
		settings.IntervalSeconds = c.Sync.IntervalSeconds
	}
	if len(c.Sync.ThreadPrefixes) > 0 {
		settings.ThreadPrefixes = append([]string(nil), c.Sync.ThreadPrefixes...)
	}
	return settings
}

// IsEnabled reports whether the scheduler should run at all.
func (s SyncSettings) IsEnabled() bool {
	if s.Enabled == nil {
		return DefaultSyncEnabled
	}
	return *s.Enabled
}
