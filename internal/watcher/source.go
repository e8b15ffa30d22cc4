package watcher

// Handler receives events from a Source. Calls for one subscription may
// arrive on different goroutines.
type Handler interface {
	OnFileChanged(kind EventKind, path string)
	OnWatchError(err error)
}

// Subscription is a live watch registration.
type Subscription interface {
	Close() error
}

// Source delivers change events for a single path.
type Source interface {
	Watch(path string, kinds EventKind, h Handler) (Subscription, error)
}
