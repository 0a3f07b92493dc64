// Package icons holds the glyphs prefixed to panel titles and markers.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Music     string
	Guestbook string
	Miniroom  string
	Diary     string
	Selected  string
}

var (
	nerdIcons = Icons{
		Music:     "\uf001 ", // nf-fa-music
		Guestbook: "\uf02d ", // nf-fa-book
		Miniroom:  "\uf015 ", // nf-fa-home
		Diary:     "\uf040 ", // nf-fa-pencil
		Selected:  "\uf04b ", // nf-fa-play
	}

	unicodeIcons = Icons{
		Music:     "🎵 ",
		Guestbook: "📖 ",
		Miniroom:  "🏠 ",
		Diary:     "📝 ",
		Selected:  "▸ ",
	}

	noneIcons = Icons{
		Music:     "♪ ",
		Guestbook: "",
		Miniroom:  "",
		Diary:     "",
		Selected:  "▸ ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Selected returns the marker drawn before the selected track.
func Selected() string {
	return current.Selected
}

// FormatMusic formats the BGM panel title.
func FormatMusic(name string) string {
	return current.Music + name
}

// FormatGuestbook formats the guestbook panel title.
func FormatGuestbook(name string) string {
	return current.Guestbook + name
}

// FormatMiniroom formats the miniroom panel title.
func FormatMiniroom(name string) string {
	return current.Miniroom + name
}

// FormatDiary formats the diary panel title.
func FormatDiary(name string) string {
	return current.Diary + name
}
