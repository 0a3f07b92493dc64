package playlist

// Track is a single playable entry of the catalog.
type Track struct {
	ID     string // unique within a catalog
	Title  string
	Source string // locator handed to the playback engine
}

// Catalog holds a fixed, ordered collection of tracks.
// It is built once and never mutated afterwards.
type Catalog struct {
	tracks []Track
}

// NewCatalog creates a catalog from the given tracks.
// The slice is copied, so later changes by the caller are not observed.
func NewCatalog(tracks ...Track) *Catalog {
	c := &Catalog{tracks: make([]Track, len(tracks))}
	copy(c.tracks, tracks)
	return c
}

// Tracks returns a copy of all tracks.
func (c *Catalog) Tracks() []Track {
	result := make([]Track, len(c.tracks))
	copy(result, c.tracks)
	return result
}

// At returns the track at the given index, or nil if out of bounds.
func (c *Catalog) At(index int) *Track {
	if index < 0 || index >= len(c.tracks) {
		return nil
	}
	t := c.tracks[index]
	return &t
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// IsEmpty returns true if the catalog has no tracks.
func (c *Catalog) IsEmpty() bool {
	return len(c.tracks) == 0
}

// IndexOf returns the index of the first track whose ID equals id.
// Returns -1 for an empty id or when nothing matches.
func (c *Catalog) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.tracks {
		if c.tracks[i].ID == id {
			return i
		}
	}
	return -1
}

// ByID returns the first track whose ID equals id, or nil.
func (c *Catalog) ByID(id string) *Track {
	return c.At(c.IndexOf(id))
}
