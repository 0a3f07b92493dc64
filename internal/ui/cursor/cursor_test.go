package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		delta      int
		listLen    int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down one", 0, 1, 10, 5, 1, 0},
		{"up clamps at zero", 0, -1, 10, 5, 0, 0},
		{"down clamps at end", 8, 5, 10, 5, 9, 5},
		{"scrolls when reaching bottom margin", 3, 1, 10, 5, 4, 1},
		{"empty list is noop", 0, 1, 0, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1)
			c.Jump(tt.start, max(tt.listLen, 1), tt.height)
			c.Move(tt.delta, tt.listLen, tt.height)

			assert.Equal(t, tt.wantPos, c.Pos())
			assert.Equal(t, tt.wantOffset, c.Offset())
		})
	}
}

func TestJumpStartEnd(t *testing.T) {
	c := New(1)

	c.JumpEnd(20, 5)
	assert.Equal(t, 19, c.Pos())
	assert.Equal(t, 15, c.Offset())

	c.JumpStart()
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())

	c.JumpEnd(0, 5)
	assert.Equal(t, 0, c.Pos(), "empty list leaves cursor alone")
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(4, 5, 3)

	assert.True(t, c.ClampToBounds(3))
	assert.Equal(t, 2, c.Pos())
	assert.LessOrEqual(t, c.Offset(), c.Pos())

	assert.False(t, c.ClampToBounds(3))

	assert.True(t, c.ClampToBounds(0))
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		pos       int
		listLen   int
		height    int
		wantStart int
		wantEnd   int
	}{
		{"list shorter than viewport", 0, 3, 10, 0, 3},
		{"top of long list", 0, 20, 5, 0, 5},
		{"bottom of long list", 19, 20, 5, 15, 20},
		{"empty list", 0, 0, 5, 0, 0},
		{"zero height", 0, 5, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1)
			if tt.listLen > 0 {
				c.Jump(tt.pos, tt.listLen, tt.height)
			}
			start, end := c.VisibleRange(tt.listLen, tt.height)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
