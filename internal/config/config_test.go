//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/minihome/audio",
			expected: filepath.Join(home, "music", "minihome", "audio"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/minihome",
			expected: "/srv/minihome",
		},
		{
			name:     "relative path unchanged",
			input:    "audio",
			expected: "audio",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "minihome", "config.toml"), paths[0])
	assert.Equal(t, "config.toml", paths[1], "local config has highest priority")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `
owner = "jiwoo"
audio_root = "/srv/music"
log_level = "DEBUG"
icons = "nerd"

[player]
autoplay = true
tick_ms = 500

[mpris]
enabled = false

[notifications]
enabled = false
timeout_ms = 2500
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "jiwoo", cfg.Owner)
	assert.Equal(t, "/srv/music", cfg.AudioRoot)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "nerd", cfg.Icons)
	assert.True(t, cfg.Player.Autoplay)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval())
	assert.False(t, cfg.MPRISEnabled())
	assert.False(t, cfg.NotificationsEnabled())
	assert.Equal(t, 2500, cfg.NotificationTimeout())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "minihome", cfg.Owner)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AudioRoot)
	assert.False(t, cfg.Player.Autoplay)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval())
	assert.True(t, cfg.MPRISEnabled())
	assert.True(t, cfg.NotificationsEnabled())
	assert.Equal(t, 5000, cfg.NotificationTimeout())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "owner = [unterminated"))

	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown icon style", `icons = "emoji"`},
		{"unknown log level", `log_level = "loud"`},
		{"empty owner", `owner = ""`},
		{"negative notification timeout", "[notifications]\ntimeout_ms = -1"},
		{"notification timeout over an hour", "[notifications]\ntimeout_ms = 3600001"},
		{"trace log level", `log_level = "trace"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestNotificationTimeout(t *testing.T) {
	zero, custom := 0, 1500

	assert.Equal(t, 5000, (&Config{}).NotificationTimeout())
	assert.Equal(t, 0, (&Config{Notifications: NotificationsConfig{TimeoutMS: &zero}}).NotificationTimeout(),
		"0 means the bubble never expires")
	assert.Equal(t, 1500, (&Config{Notifications: NotificationsConfig{TimeoutMS: &custom}}).NotificationTimeout())

	cfg, err := Load(writeConfig(t, "[notifications]\ntimeout_ms = 0"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.NotificationTimeout())
}

func TestTickInterval_Bounds(t *testing.T) {
	tests := []struct {
		ms   int
		want time.Duration
	}{
		{0, 250 * time.Millisecond},
		{-10, 250 * time.Millisecond},
		{10, 50 * time.Millisecond},
		{50, 50 * time.Millisecond},
		{1000, time.Second},
		{2000, 2 * time.Second},
		{9000, 2 * time.Second},
	}

	for _, tt := range tests {
		cfg := Config{Player: PlayerConfig{TickMS: tt.ms}}
		assert.Equal(t, tt.want, cfg.TickInterval(), "tick_ms=%d", tt.ms)
	}
}

func TestMPRISEnabled(t *testing.T) {
	on, off := true, false

	assert.True(t, (&Config{}).MPRISEnabled())
	assert.True(t, (&Config{MPRIS: MPRISConfig{Enabled: &on}}).MPRISEnabled())
	assert.False(t, (&Config{MPRIS: MPRISConfig{Enabled: &off}}).MPRISEnabled())
}
