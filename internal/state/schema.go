package state

import (
	"database/sql"
	"time"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS visitor_counter (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_visit INTEGER NOT NULL,
			today INTEGER NOT NULL,
			total INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS guestbook_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			author TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_guestbook_created_at ON guestbook_entries(created_at DESC);

		CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL CHECK (kind IN ('miniroom', 'diary')),
			body TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_posts_kind_created_at ON posts(kind, created_at DESC);
	`)
	if err != nil {
		return err
	}

	var version int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return err
	}
	if version >= currentSchemaVersion {
		return nil
	}

	// Fresh database: record the version and seed the guestbook once.
	if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, currentSchemaVersion); err != nil {
		return err
	}
	return seedGuestbook(db, time.Now())
}

var seedEntries = []struct {
	author  string
	message string
	age     time.Duration
}{
	{"Minji", "Your miniroom looks so cozy! Dropping by to say hi.", 72 * time.Hour},
	{"Taeyang", "The BGM on this page is the best. Which album is it from?", 26 * time.Hour},
	{"Seo-yeon", "Happy to be your ilchon! Visit my homepage too.", 3 * time.Hour},
}

func seedGuestbook(db *sql.DB, now time.Time) error {
	for _, e := range seedEntries {
		_, err := db.Exec(`
			INSERT INTO guestbook_entries (author, message, created_at)
			VALUES (?, ?, ?)
		`, e.author, e.message, now.Add(-e.age).Unix())
		if err != nil {
			return err
		}
	}
	return nil
}
