package playback

import (
	"fmt"
	"time"
)

// FormatClock renders d as MM:SS. Both fields are truncated, never rounded,
// and zero padded to two digits. Negative durations render as 00:00.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ProgressRatio returns position/duration clamped to [0, 1].
// ok is false while the duration is unknown.
func ProgressRatio(position, duration time.Duration) (ratio float64, ok bool) {
	if duration <= 0 {
		return 0, false
	}
	ratio = float64(position) / float64(duration)
	return min(max(ratio, 0), 1), true
}
