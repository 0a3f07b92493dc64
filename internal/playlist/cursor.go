package playlist

// Cursor is a position inside a Catalog that wraps around at both ends.
//
// The position is only meaningful while the catalog is non-empty; every
// movement on an empty catalog is a no-op that reports false.
type Cursor struct {
	catalog *Catalog
	index   int
}

// NewCursor creates a cursor at the first track of the catalog.
func NewCursor(c *Catalog) *Cursor {
	return &Cursor{catalog: c}
}

// Index returns the current position.
func (c *Cursor) Index() int {
	return c.index
}

// Current returns the track under the cursor, or nil if the catalog is empty.
func (c *Cursor) Current() *Track {
	return c.catalog.At(c.index)
}

// Next advances by one, wrapping from the last track to the first.
func (c *Cursor) Next() bool {
	n := c.catalog.Len()
	if n == 0 {
		return false
	}
	c.index = (c.index + 1) % n
	return true
}

// Previous moves back by one, wrapping from the first track to the last.
func (c *Cursor) Previous() bool {
	n := c.catalog.Len()
	if n == 0 {
		return false
	}
	if c.index > 0 {
		c.index--
	} else {
		c.index = n - 1
	}
	return true
}

// MoveTo sets the position. Returns false if index is out of bounds.
func (c *Cursor) MoveTo(index int) bool {
	if index < 0 || index >= c.catalog.Len() {
		return false
	}
	c.index = index
	return true
}
