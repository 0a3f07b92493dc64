// Package visitor implements the homepage's today/total visit counter.
package visitor

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Record is the persisted counter state.
type Record struct {
	LastVisit time.Time // calendar day of the most recent visit, local midnight
	Today     int
	Total     int
}

// Visit returns the record after one more visit at now. A nil prev is the
// first visit ever.
func Visit(prev *Record, now time.Time) Record {
	day := Day(now)
	if prev == nil {
		return Record{LastVisit: day, Today: 1, Total: 1}
	}

	today := 1
	if SameDay(prev.LastVisit, day) {
		today = prev.Today + 1
	}
	return Record{LastVisit: day, Today: today, Total: prev.Total + 1}
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// String renders the header counter, e.g. "TODAY 3 | TOTAL 1,204".
func (r Record) String() string {
	return fmt.Sprintf("TODAY %s | TOTAL %s",
		humanize.Comma(int64(r.Today)),
		humanize.Comma(int64(r.Total)))
}
