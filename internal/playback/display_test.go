package playback

// fakeDisplay records every write the controller makes.
type fakeDisplay struct {
	title    string
	elapsed  string
	total    string
	progress float64
	playing  bool
	selected string

	titleWrites   []string
	playingWrites []bool
	progressSet   bool
}

func (d *fakeDisplay) SetTitle(title string) {
	d.title = title
	d.titleWrites = append(d.titleWrites, title)
}

func (d *fakeDisplay) SetElapsed(clock string) { d.elapsed = clock }

func (d *fakeDisplay) SetTotal(clock string) { d.total = clock }

func (d *fakeDisplay) SetProgress(ratio float64) {
	d.progress = ratio
	d.progressSet = true
}

func (d *fakeDisplay) SetPlaying(playing bool) {
	d.playing = playing
	d.playingWrites = append(d.playingWrites, playing)
}

func (d *fakeDisplay) SetSelected(id string) { d.selected = id }

var _ Display = (*fakeDisplay)(nil)
