package app

import (
	"github.com/llehouerou/minihome/internal/player"
	"github.com/llehouerou/minihome/internal/state"
	"github.com/llehouerou/minihome/internal/visitor"
)

// engineEventMsg wraps one engine notification.
type engineEventMsg player.Event

// autoplayMsg starts playback once the program is running.
type autoplayMsg struct{}

// visitRecordedMsg carries the counter after this launch was counted.
type visitRecordedMsg struct {
	Record visitor.Record
	Err    error
}

// guestbookLoadedMsg carries the stored guestbook entries.
type guestbookLoadedMsg struct {
	Entries []state.GuestbookEntry
	Err     error
}

// guestbookDeletedMsg reports the outcome of a confirmed delete.
type guestbookDeletedMsg struct {
	ID  int64
	Err error
}

// postsLoadedMsg carries the recent posts of one kind.
type postsLoadedMsg struct {
	Kind  state.PostKind
	Posts []state.Post
	Err   error
}

// postAddedMsg reports the outcome of a submitted form.
type postAddedMsg struct {
	Kind state.PostKind
	Post state.Post
	Err  error
}

// notifiedMsg carries the desktop notification id for later replacement.
type notifiedMsg struct {
	ID  uint32
	Err error
}
