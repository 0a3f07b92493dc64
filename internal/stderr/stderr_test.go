//go:build !windows

package stderr

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward_LogsNonEmptyLines(t *testing.T) {
	logger, hook := test.NewNullLogger()

	forward(strings.NewReader("ALSA lib pcm.c: underrun\n\n   \nsecond line\n"), logger)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "ALSA lib pcm.c: underrun", entries[0].Message)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "second line", entries[1].Message)
}

func TestStop_WithoutStartIsNoop(t *testing.T) {
	Stop()
	assert.False(t, started)
}
