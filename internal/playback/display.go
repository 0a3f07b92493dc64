package playback

// Display is the passive surface the controller keeps in sync.
//
// Implementations only render what they are told; they never call back into
// the controller from these methods.
type Display interface {
	SetTitle(title string)
	SetElapsed(clock string)
	SetTotal(clock string)
	// SetProgress receives the elapsed/total ratio in [0, 1].
	SetProgress(ratio float64)
	// SetPlaying toggles the play/pause affordance: true shows "pause".
	SetPlaying(playing bool)
	// SetSelected mirrors the cursor onto the track selection.
	SetSelected(id string)
}

// NopDisplay discards every update.
type NopDisplay struct{}

func (NopDisplay) SetTitle(string)     {}
func (NopDisplay) SetElapsed(string)   {}
func (NopDisplay) SetTotal(string)     {}
func (NopDisplay) SetProgress(float64) {}
func (NopDisplay) SetPlaying(bool)     {}
func (NopDisplay) SetSelected(string)  {}

var _ Display = NopDisplay{}
