//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpGuestbookDelete,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpGuestbookDelete,
			err:      errors.New("no such entry"),
			expected: "Failed to delete guestbook entry: no such entry",
		},
		{
			name:     "visitor counter operation",
			op:       OpVisitorCount,
			err:      errors.New("database is locked"),
			expected: "Failed to update visitor counter: database is locked",
		},
		{
			name:     "diary operation",
			op:       OpDiaryPost,
			err:      errors.New("disk full"),
			expected: "Failed to register diary: disk full",
		},
		{
			name:     "startup operation",
			op:       OpStateOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open homepage database: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackLoad,
			context:  "song1",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpPlaybackLoad,
			context:  "song1",
			err:      errors.New("unsupported format"),
			expected: "Failed to load track 'song1': unsupported format",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlaybackLoad,
			context:  "",
			err:      errors.New("unsupported format"),
			expected: "Failed to load track: unsupported format",
		},
		{
			name:     "config path context",
			op:       OpConfigLoad,
			context:  "/etc/minihome.toml",
			err:      errors.New("not found"),
			expected: "Failed to load config '/etc/minihome.toml': not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpStateOpen, OpConfigLoad,
		OpVisitorCount,
		OpGuestbookLoad, OpGuestbookDelete,
		OpCommentPost, OpDiaryPost, OpPostsLoad,
		OpPlaybackLoad,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
