package db

// SchemaSQL is the complete schema for fresh installs. It is the single
// source of truth: repository tests build in-memory databases from
// GetSchemaSQL(), so any drift between this schema and repository code
// fails immediately with "no such column".
const SchemaSQL = `
-- Discovered thread→issue links. Cache over the bounded message-history
-- scan; an entry is dropped when its issue no longer exists.
CREATE TABLE IF NOT EXISTS link_cache (
	thread_id TEXT PRIMARY KEY,
	issue_number INTEGER NOT NULL,
	issue_url TEXT NOT NULL,
	discovered_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

-- Durable record of corrective actions and per-unit sync failures.
CREATE TABLE IF NOT EXISTS sync_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project TEXT NOT NULL,
	action TEXT NOT NULL,
	thread_id TEXT NOT NULL,
	issue_number INTEGER,
	detail TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sync_log_project ON sync_log(project);
CREATE INDEX IF NOT EXISTS idx_sync_log_action ON sync_log(action);
CREATE INDEX IF NOT EXISTS idx_sync_log_created ON sync_log(created_at);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
