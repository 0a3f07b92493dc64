//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = "/org/freedesktop/Notifications"
	busMethod = busName + ".Notify"
	busClose  = busName + ".CloseNotification"

	appName      = "Minihome"
	desktopEntry = "minihome"
)

// busNotifier talks to the notification server on the session bus.
type busNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one it returns a notifier that
// shows nothing, so a headless session still runs.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // no session bus, no bubbles
	}
	return &busNotifier{obj: conn.Object(busName, busPath)}, nil
}

// hints maps n onto the freedesktop hint dictionary.
func hints(n Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}
	if n.Category != "" {
		h["category"] = dbus.MakeVariant(n.Category)
	}
	if n.Transient {
		h["transient"] = dbus.MakeVariant(true)
	}
	return h
}

// Notify calls Notify(app_name, replaces_id, app_icon, summary, body,
// actions, hints, expire_timeout) and returns the server's ID.
func (b *busNotifier) Notify(n Notification) (uint32, error) {
	var id uint32
	err := b.obj.Call(busMethod, 0,
		appName, n.ReplacesID, n.Icon, n.Title, n.Body,
		[]string{}, hints(n), n.Timeout,
	).Store(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Close dismisses a bubble. ID 0 was never shown and is skipped.
func (b *busNotifier) Close(id uint32) error {
	if id == 0 {
		return nil
	}
	return b.obj.Call(busClose, 0, id).Err
}
