package compose

import (
	"github.com/llehouerou/minihome/internal/state"
)

// Source identifies compose actions in action.Msg.
const Source = "compose"

// Submitted carries a trimmed, non-empty body to store.
type Submitted struct {
	Kind state.PostKind
	Body string
}

// ActionType implements action.Action.
func (a Submitted) ActionType() string { return "compose.submitted" }

// Rejected reports an empty submission; Status is the message to show.
type Rejected struct {
	Kind   state.PostKind
	Status string
}

// ActionType implements action.Action.
func (a Rejected) ActionType() string { return "compose.rejected" }
