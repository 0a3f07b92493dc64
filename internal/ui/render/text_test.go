package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii untouched", "hello", "hello"},
		{"hangul untouched", "안녕하세요", "안녕하세요"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "line1\nline2", "line1line2"},
		{"escape dropped", "a\x1b[31mb", "a[31mb"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"invalid byte dropped", "a\xffb", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "song1", 10, "song1"},
		{"exact fit", "hello", 5, "hello"},
		{"ascii truncated", "Rainy Day Playlist", 8, "Rainy..."},
		{"wide characters truncated", "비오는날의플레이리스트", 9, "비오는..."},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, runewidth.StringWidth(got), tt.maxWidth)
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		input string
		width int
	}{
		{"short", 10},
		{"much longer than the width", 10},
		{"한글 제목", 12},
		{"", 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := TruncateAndPad(tt.input, tt.width)
			assert.Equal(t, tt.width, runewidth.StringWidth(got))
		})
	}
}

func TestRow(t *testing.T) {
	got := Row("Minji", "2 hours ago", 30)
	assert.Equal(t, 30, runewidth.StringWidth(got))
	assert.True(t, strings.HasPrefix(got, "Minji "))
	assert.True(t, strings.HasSuffix(got, " 2 hours ago"))

	// Too narrow still keeps a single space gap.
	assert.Equal(t, "left right", Row("left", "right", 3))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "─────", Separator(5))
	assert.Empty(t, Separator(0))
}
