package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/minihome/internal/db"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

// GuestbookEntry is one message left by a visitor.
type GuestbookEntry struct {
	ID        int64
	Author    string
	Message   string
	CreatedAt time.Time
}

// ListGuestbook returns all entries, newest first.
func (m *Manager) ListGuestbook() ([]GuestbookEntry, error) {
	rows, err := m.db.Query(`
		SELECT id, author, message, created_at
		FROM guestbook_entries
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []GuestbookEntry
	for rows.Next() {
		var e GuestbookEntry
		var created sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Author, &e.Message, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = db.UnixTime(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddGuestbookEntry stores a new entry stamped with the current time.
func (m *Manager) AddGuestbookEntry(author, message string) (GuestbookEntry, error) {
	e := GuestbookEntry{Author: author, Message: message, CreatedAt: m.now().Truncate(time.Second)}
	res, err := m.db.Exec(`
		INSERT INTO guestbook_entries (author, message, created_at)
		VALUES (?, ?, ?)
	`, e.Author, e.Message, e.CreatedAt.Unix())
	if err != nil {
		return GuestbookEntry{}, err
	}
	e.ID, err = res.LastInsertId()
	return e, err
}

// DeleteGuestbookEntry removes an entry. Deleting a missing id returns ErrNotFound.
func (m *Manager) DeleteGuestbookEntry(ctx context.Context, id int64) error {
	return db.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM guestbook_entries WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
