// Package errmsg provides consistent error formatting for the status line.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Startup
	OpStateOpen  Op = "open homepage database"
	OpConfigLoad Op = "load config"

	// Visitor counter
	OpVisitorCount Op = "update visitor counter"

	// Guestbook
	OpGuestbookLoad   Op = "load guestbook"
	OpGuestbookDelete Op = "delete guestbook entry"

	// Posts
	OpCommentPost Op = "register comment"
	OpDiaryPost   Op = "register diary"
	OpPostsLoad   Op = "load posts"

	// Playback
	OpPlaybackLoad Op = "load track"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
