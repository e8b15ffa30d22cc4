package watcher

import (
	"time"

	"wordwatch/internal/words"
)

const (
	DefaultDelimiter       = words.DefaultDelimiter
	DefaultErrorBufferSize = 100
	DefaultReadAttempts    = 3
	DefaultRetryInterval   = 50 * time.Millisecond
)

// WatchedEvents are the event kinds a FileWatcher registers for.
var WatchedEvents = Modified | Created | Deleted
