package playerbar

// Source identifies player bar actions in action.Msg.
const Source = "playerbar"

// SelectTrack asks the app to play the track with ID.
type SelectTrack struct {
	ID string
}

// ActionType implements action.Action.
func (a SelectTrack) ActionType() string { return "playerbar.select_track" }
