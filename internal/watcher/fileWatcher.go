package watcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"wordwatch/internal/lib/logger/handlers/slogdiscard"
	"wordwatch/internal/lib/logger/sl"
	"wordwatch/internal/words"
)

// NotificationHandler receives change notifications. It is called
// synchronously on the goroutine that delivered the file event.
type NotificationHandler func(words.ChangeNotification)

type subscriber struct {
	id      uint64
	handler NotificationHandler
}

// FileWatcher keeps the word set of one file in sync with the file content.
type FileWatcher struct {
	id      string
	path    string
	config  Config
	reader  LineReader
	sub     Subscription
	logger  *slog.Logger
	metrics *WatcherMetrics

	current atomic.Pointer[words.WordSet]

	// mu serializes event handling and guards closed.
	mu     sync.Mutex
	closed bool
	errors chan error

	subsMu      sync.RWMutex
	subscribers []subscriber
	nextSubID   uint64

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// New starts watching path, which must name an existing regular file.
// All setup failures are returned as *WatchSetupError.
func New(path string, config Config) (*FileWatcher, error) {
	config = withDefaults(config)

	info, err := config.Fs.Stat(path)
	if err != nil {
		return nil, &WatchSetupError{Path: path, Err: fmt.Errorf("%w: %w", ErrInvalidPath, err)}
	}
	if !info.Mode().IsRegular() {
		return nil, &WatchSetupError{Path: path, Err: ErrNotRegularFile}
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	fw := &FileWatcher{
		id:      id,
		path:    path,
		config:  config,
		reader:  config.Reader,
		logger:  config.Logger.With(slog.String("watcher_id", id), slog.String("path", path)),
		metrics: NewWatcherMetrics(),
		errors:  make(chan error, config.ErrorBufferSize),
		ctx:     ctx,
		cancel:  cancel,
	}
	empty := words.Empty
	fw.current.Store(&empty)

	sub, err := config.Source.Watch(path, WatchedEvents, fw)
	if err != nil {
		cancel()
		return nil, &WatchSetupError{Path: path, Err: err}
	}
	fw.sub = sub

	fw.logger.Info("watching file", slog.String("delimiter", string(config.Delimiter)))
	return fw, nil
}

func withDefaults(config Config) Config {
	if config.Delimiter == 0 {
		config.Delimiter = DefaultDelimiter
	}
	if config.ErrorBufferSize <= 0 {
		config.ErrorBufferSize = DefaultErrorBufferSize
	}
	if config.ReadAttempts <= 0 {
		config.ReadAttempts = DefaultReadAttempts
	}
	if config.RetryInterval <= 0 {
		config.RetryInterval = DefaultRetryInterval
	}
	if config.Logger == nil {
		config.Logger = slogdiscard.NewDiscardLogger()
	}
	if config.Fs == nil {
		config.Fs = afero.NewOsFs()
	}
	if config.Reader == nil {
		config.Reader = NewFSReader(config.Fs)
	}
	if config.Source == nil {
		config.Source = NewNotifySource(config.DebounceDuration, config.Logger)
	}
	return config
}

// OnFileChanged handles one file event. It is called by the Source.
func (fw *FileWatcher) OnFileChanged(kind EventKind, path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return
	}

	switch kind {
	case Deleted:
		fw.metrics.RecordEvent(kind)
		empty := words.Empty
		fw.current.Store(&empty)
		fw.metrics.RecordClear()
		fw.logger.Debug("word set cleared")
		fw.notify(words.ChangeNotification{Kind: words.Cleared})

	case Modified, Created:
		fw.metrics.RecordEvent(kind)
		tokens, err := fw.readTokens(path)
		if err != nil {
			if fw.ctx.Err() != nil {
				return
			}
			fw.metrics.RecordReadError()
			fw.logger.Warn("skipping update, file could not be read", sl.Err(err))
			fw.handleError(err)
			return
		}

		next := words.Reconcile(*fw.current.Load(), tokens)
		fw.current.Store(&next)
		fw.metrics.RecordUpdate()
		fw.logger.Debug("word set updated", slog.String("kind", kind.String()), slog.Int("words", next.Len()))
		fw.notify(words.ChangeNotification{Kind: words.Updated})

	default:
		fw.logger.Debug("ignoring event", slog.String("kind", kind.String()))
	}
}

// OnWatchError reports a runtime failure of the Source.
func (fw *FileWatcher) OnWatchError(err error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed || err == nil {
		return
	}
	fw.metrics.RecordWatchError()
	fw.logger.Error("watch error", sl.Err(err))
	fw.handleError(err)
}

func (fw *FileWatcher) readTokens(path string) ([]string, error) {
	lines, err := fw.readLines(path)
	if err != nil {
		return nil, err
	}

	tokens := words.Tokenize(lines, fw.config.Delimiter)
	if fw.config.SkipEmptyTokens {
		tokens = words.WithoutEmpty(tokens)
	}
	return tokens, nil
}

// readLines retries transient failures with exponential backoff. A missing
// file is not retried.
func (fw *FileWatcher) readLines(path string) ([]string, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = fw.config.RetryInterval

	attempt := 0
	lines, err := backoff.Retry(fw.ctx, func() ([]string, error) {
		attempt++
		lines, err := fw.reader.ReadLines(path)
		if err == nil {
			return lines, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, backoff.Permanent(err)
		}
		fw.logger.Debug("read attempt failed", slog.Int("attempt", attempt), sl.Err(err))
		return nil, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(fw.config.ReadAttempts)),
	)
	if err != nil {
		var readErr *FileReadError
		if errors.As(err, &readErr) {
			return nil, readErr
		}
		return nil, &FileReadError{Path: path, Err: err}
	}
	return lines, nil
}

func (fw *FileWatcher) notify(n words.ChangeNotification) {
	fw.subsMu.RLock()
	handlers := make([]NotificationHandler, 0, len(fw.subscribers))
	for _, s := range fw.subscribers {
		handlers = append(handlers, s.handler)
	}
	fw.subsMu.RUnlock()

	for _, h := range handlers {
		h(n)
	}
}

func (fw *FileWatcher) handleError(err error) {
	select {
	case fw.errors <- err:
	default:
		fw.metrics.RecordDroppedError()
		fw.logger.Warn("error buffer full, dropping error", sl.Err(err))
	}
}

// Subscribe registers handler for every future notification and returns a
// function that removes it.
func (fw *FileWatcher) Subscribe(handler NotificationHandler) func() {
	if handler == nil {
		return func() {}
	}

	fw.subsMu.Lock()
	id := fw.nextSubID
	fw.nextSubID++
	fw.subscribers = append(fw.subscribers, subscriber{id: id, handler: handler})
	fw.subsMu.Unlock()

	return func() {
		fw.subsMu.Lock()
		defer fw.subsMu.Unlock()
		for i, s := range fw.subscribers {
			if s.id == id {
				fw.subscribers = append(fw.subscribers[:i:i], fw.subscribers[i+1:]...)
				return
			}
		}
	}
}

// CurrentWords returns the word set as of the last processed event.
// It never blocks on event handling.
func (fw *FileWatcher) CurrentWords() words.WordSet {
	return *fw.current.Load()
}

// Errors returns the channel runtime errors are reported on. It is closed by Close.
func (fw *FileWatcher) Errors() <-chan error {
	return fw.errors
}

func (fw *FileWatcher) Stats() Stats {
	return fw.metrics.Stats()
}

func (fw *FileWatcher) ID() string {
	return fw.id
}

func (fw *FileWatcher) Path() string {
	return fw.path
}

// Close stops watching. It must not be called from a NotificationHandler.
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		fw.cancel()

		if fw.sub != nil {
			err = fw.sub.Close()
		}

		fw.mu.Lock()
		fw.closed = true
		close(fw.errors)
		fw.mu.Unlock()

		fw.logger.Info("stopped watching file")
	})
	return err
}

var _ Handler = (*FileWatcher)(nil)
