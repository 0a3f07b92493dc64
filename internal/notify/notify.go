// Package notify announces the BGM track on the desktop through the
// freedesktop notification service.
package notify

import "fmt"

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// CategoryMusic groups the bubble with other media notifications.
const CategoryMusic = "x-gnome.music"

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // summary, the track title
	Body       string  // plain text, no markup
	Icon       string  // icon name
	Category   string  // optional "category" hint
	Transient  bool    // skip the notification history
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new bubble, >0 = replace that one
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier shows and dismisses desktop notifications.
type Notifier interface {
	// Notify shows n and returns its server ID, 0 when no server is reachable.
	Notify(n Notification) (uint32, error)
	// Close dismisses the notification with the given ID.
	Close(id uint32) error
}

// NowPlaying builds the track-change notification. Passing the previous ID
// as replaces keeps a single bubble on screen while tracks change.
func NowPlaying(title, owner string, replaces uint32, timeoutMS int) Notification {
	body := "BGM"
	if owner != "" {
		body = fmt.Sprintf("BGM · %s's minihome", owner)
	}
	return Notification{
		Title:      title,
		Body:       body,
		Icon:       "audio-x-generic",
		Category:   CategoryMusic,
		Transient:  true,
		Timeout:    int32(timeoutMS), //nolint:gosec // bounded by config validation
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}

// nopNotifier stands in when no notification server can be reached.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (nopNotifier) Close(uint32) error { return nil }
