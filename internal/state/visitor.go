package state

import (
	"context"
	"database/sql"
	"errors"

	"github.com/llehouerou/minihome/internal/db"
	"github.com/llehouerou/minihome/internal/visitor"
)

// RecordVisit counts one visit at the manager's current time and returns the
// updated counter. The read and the write happen in one transaction.
func (m *Manager) RecordVisit(ctx context.Context) (visitor.Record, error) {
	var rec visitor.Record
	err := db.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		prev, err := getVisitor(tx)
		if err != nil {
			return err
		}
		rec = visitor.Visit(prev, m.now())
		return saveVisitor(tx, rec)
	})
	return rec, err
}

// GetVisitor returns the stored counter, or nil before the first visit.
func (m *Manager) GetVisitor() (*visitor.Record, error) {
	tx, err := m.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck // read-only
	return getVisitor(tx)
}

func getVisitor(tx *sql.Tx) (*visitor.Record, error) {
	var lastVisit sql.NullInt64
	var rec visitor.Record
	err := tx.QueryRow(`
		SELECT last_visit, today, total FROM visitor_counter WHERE id = 1
	`).Scan(&lastVisit, &rec.Today, &rec.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec.LastVisit = visitor.Day(db.UnixTime(lastVisit))
	return &rec, nil
}

func saveVisitor(tx *sql.Tx, rec visitor.Record) error {
	_, err := tx.Exec(`
		INSERT INTO visitor_counter (id, last_visit, today, total)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_visit = excluded.last_visit,
			today = excluded.today,
			total = excluded.total
	`, rec.LastVisit.Unix(), rec.Today, rec.Total)
	return err
}
