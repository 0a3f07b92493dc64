package state

import (
	"context"
	"time"

	"github.com/llehouerou/minihome/internal/visitor"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	Visitor   *visitor.Record
	Guestbook []GuestbookEntry
	Posts     []Post
	Err       error // returned by every mutating call when set
	Now       func() time.Time

	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{Now: time.Now}
}

func (m *Mock) RecordVisit(_ context.Context) (visitor.Record, error) {
	if m.Err != nil {
		return visitor.Record{}, m.Err
	}
	rec := visitor.Visit(m.Visitor, m.Now())
	m.Visitor = &rec
	return rec, nil
}

func (m *Mock) ListGuestbook() ([]GuestbookEntry, error) {
	out := make([]GuestbookEntry, len(m.Guestbook))
	copy(out, m.Guestbook)
	return out, nil
}

func (m *Mock) DeleteGuestbookEntry(_ context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	for i, e := range m.Guestbook {
		if e.ID == id {
			m.Guestbook = append(m.Guestbook[:i], m.Guestbook[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Mock) AddPost(kind PostKind, body string) (Post, error) {
	if m.Err != nil {
		return Post{}, m.Err
	}
	p := Post{ID: int64(len(m.Posts) + 1), Kind: kind, Body: body, CreatedAt: m.Now()}
	m.Posts = append(m.Posts, p)
	return p, nil
}

func (m *Mock) ListPosts(kind PostKind, limit int) ([]Post, error) {
	var out []Post
	for i := len(m.Posts) - 1; i >= 0; i-- {
		if m.Posts[i].Kind != kind {
			continue
		}
		out = append(out, m.Posts[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}
