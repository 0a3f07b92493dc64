package guestbook

import (
	"github.com/llehouerou/minihome/internal/ui/action"
)

// Source identifies guestbook actions in action.Msg.
const Source = "guestbook"

// DeleteRequest asks the app to confirm and delete an entry.
type DeleteRequest struct {
	ID     int64
	Author string
}

// ActionType implements action.Action.
func (a DeleteRequest) ActionType() string { return "guestbook.delete_request" }

var _ action.Action = DeleteRequest{}
