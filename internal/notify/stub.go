//go:build !linux

package notify

// New returns a notifier that shows nothing; the session bus is Linux only.
func New() (Notifier, error) {
	return nopNotifier{}, nil
}
