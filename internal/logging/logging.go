// Package logging configures the application logger. The TUI owns the
// terminal, so log lines go to a file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	log "github.com/sirupsen/logrus"
)

const logFile = "minihome/minihome.log"

// Path returns the log file location, creating its directory.
func Path() (string, error) {
	return xdg.StateFile(logFile)
}

// ParseLevel maps a config level name to a logrus level. Empty means info;
// verbose forces debug.
func ParseLevel(name string, verbose bool) (log.Level, error) {
	if verbose {
		return log.DebugLevel, nil
	}
	if name == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return lvl, nil
}

// New builds a logger writing text lines to w.
func New(w io.Writer, level log.Level) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return l
}

// Open appends to the log file at path (the XDG location when empty).
// Close the returned file on exit.
func Open(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}
