//go:build !linux

package mpris

import "github.com/sirupsen/logrus"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct {
	state snapshotStore
}

// New returns a no-op adapter on non-Linux platforms.
func New(_ logrus.FieldLogger) *Adapter {
	return &Adapter{}
}

// Start is a no-op on non-Linux platforms.
func (a *Adapter) Start(_ Sender) {}

// Publish records the snapshot but exposes it nowhere.
func (a *Adapter) Publish(s Snapshot) {
	a.state.set(s)
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
