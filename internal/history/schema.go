package history

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS search_history (
			query TEXT PRIMARY KEY,
			order_by TEXT NOT NULL DEFAULT 'relevance',
			searched_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_search_history_searched_at ON search_history(searched_at);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}
