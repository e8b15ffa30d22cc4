package watcher

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// EventKind is a bit set of file event kinds.
type EventKind uint8

const (
	Modified EventKind = 1 << iota
	Created
	Deleted
)

func (k EventKind) Has(other EventKind) bool {
	return k&other != 0
}

func (k EventKind) String() string {
	var parts []string
	if k.Has(Modified) {
		parts = append(parts, "modified")
	}
	if k.Has(Created) {
		parts = append(parts, "created")
	}
	if k.Has(Deleted) {
		parts = append(parts, "deleted")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Config содержит настройки для FileWatcher
type Config struct {
	// Delimiter splits each line into words. Defaults to ','.
	Delimiter rune
	// SkipEmptyTokens drops empty words produced by adjacent or trailing delimiters.
	SkipEmptyTokens bool
	// DebounceDuration coalesces bursts of writes in the default fsnotify source.
	// Zero disables debouncing.
	DebounceDuration time.Duration
	ErrorBufferSize  int
	// ReadAttempts is the total number of reads tried per event, including the first.
	ReadAttempts  int
	RetryInterval time.Duration
	Logger        *slog.Logger

	// Source, Reader and Fs replace the OS-backed collaborators, mostly in tests.
	Source Source
	Reader LineReader
	Fs     afero.Fs
}
