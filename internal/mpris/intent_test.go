package mpris

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntentString(t *testing.T) {
	tests := []struct {
		intent Intent
		want   string
	}{
		{IntentPlay, "play"},
		{IntentPause, "pause"},
		{IntentPlayPause, "playpause"},
		{IntentNext, "next"},
		{IntentPrevious, "previous"},
		{Intent(0), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.intent.String())
	}
}

func TestSnapshotStore_ConcurrentReadWrite(t *testing.T) {
	var s snapshotStore
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 100 {
			s.set(Snapshot{TrackID: "song1", Position: time.Duration(i) * time.Second})
		}
	}()
	go func() {
		defer wg.Done()
		for range 100 {
			_ = s.get()
		}
	}()
	wg.Wait()

	assert.Equal(t, 99*time.Second, s.get().Position)
}
