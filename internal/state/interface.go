package state

import (
	"context"

	"github.com/llehouerou/minihome/internal/visitor"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	RecordVisit(ctx context.Context) (visitor.Record, error)
	ListGuestbook() ([]GuestbookEntry, error)
	DeleteGuestbookEntry(ctx context.Context, id int64) error
	AddPost(kind PostKind, body string) (Post, error)
	ListPosts(kind PostKind, limit int) ([]Post, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
