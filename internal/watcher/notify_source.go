package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"wordwatch/internal/lib/logger/handlers/slogdiscard"
)

// NotifySource is a Source backed by fsnotify. It watches the parent
// directory of the path so that the watch survives the file being removed
// and created again.
type NotifySource struct {
	debounce time.Duration
	logger   *slog.Logger
}

func NewNotifySource(debounce time.Duration, logger *slog.Logger) *NotifySource {
	if logger == nil {
		logger = slogdiscard.NewDiscardLogger()
	}
	return &NotifySource{
		debounce: debounce,
		logger:   logger,
	}
}

func (s *NotifySource) Watch(path string, kinds EventKind, h Handler) (Subscription, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	sub := &notifySubscription{
		watcher:  watcher,
		path:     abs,
		kinds:    kinds,
		handler:  h,
		logger:   s.logger.With(slog.String("path", abs)),
		stopChan: make(chan struct{}),
	}
	if s.debounce > 0 {
		sub.debouncer = NewDebouncer(s.debounce)
	}

	sub.wg.Add(1)
	go sub.run()

	return sub, nil
}

type notifySubscription struct {
	watcher   *fsnotify.Watcher
	path      string
	kinds     EventKind
	handler   Handler
	debouncer *Debouncer
	logger    *slog.Logger
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func (s *notifySubscription) run() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopChan:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.dispatch(event)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.handler.OnWatchError(fmt.Errorf("watch %s: %w", s.path, err))
		}
	}
}

func (s *notifySubscription) dispatch(event fsnotify.Event) {
	if filepath.Clean(event.Name) != s.path {
		return
	}

	kind, ok := kindOf(event.Op)
	if !ok || !s.kinds.Has(kind) {
		return
	}
	s.logger.Debug("file event", slog.String("op", event.Op.String()), slog.String("kind", kind.String()))

	if s.debouncer == nil {
		s.handler.OnFileChanged(kind, event.Name)
		return
	}

	// Deletes are delivered immediately and discard any update still pending.
	if kind == Deleted {
		s.debouncer.Cancel(s.path)
		s.handler.OnFileChanged(kind, event.Name)
		return
	}

	name := event.Name
	s.debouncer.Debounce(s.path, func() {
		s.handler.OnFileChanged(kind, name)
	})
}

// kindOf maps an fsnotify op to an event kind. Renaming the file away counts
// as a delete; chmod-only events are ignored.
func kindOf(op fsnotify.Op) (EventKind, bool) {
	switch {
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return Deleted, true
	case op.Has(fsnotify.Create):
		return Created, true
	case op.Has(fsnotify.Write):
		return Modified, true
	default:
		return 0, false
	}
}

func (s *notifySubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()

		if s.debouncer != nil {
			s.debouncer.Stop()
		}

		if cerr := s.watcher.Close(); cerr != nil {
			err = fmt.Errorf("failed to close watcher: %w", cerr)
		}
	})
	return err
}
