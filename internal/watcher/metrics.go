package watcher

import (
	"sync/atomic"
	"time"
)

type WatcherMetrics struct {
	eventsProcessed int64
	updates         int64
	clears          int64
	readErrors      int64
	watchErrors     int64
	droppedErrors   int64
	lastEventTime   atomic.Int64
}

// Stats is a point-in-time copy of the watcher counters.
type Stats struct {
	EventsProcessed int64     `json:"events_processed"`
	Updates         int64     `json:"updates"`
	Clears          int64     `json:"clears"`
	ReadErrors      int64     `json:"read_errors"`
	WatchErrors     int64     `json:"watch_errors"`
	DroppedErrors   int64     `json:"dropped_errors"`
	LastEventTime   time.Time `json:"last_event_time"`
}

func NewWatcherMetrics() *WatcherMetrics {
	return &WatcherMetrics{}
}

func (m *WatcherMetrics) RecordEvent(kind EventKind) {
	atomic.AddInt64(&m.eventsProcessed, 1)
	m.lastEventTime.Store(time.Now().UnixNano())
}

func (m *WatcherMetrics) RecordUpdate() {
	atomic.AddInt64(&m.updates, 1)
}

func (m *WatcherMetrics) RecordClear() {
	atomic.AddInt64(&m.clears, 1)
}

func (m *WatcherMetrics) RecordReadError() {
	atomic.AddInt64(&m.readErrors, 1)
}

func (m *WatcherMetrics) RecordWatchError() {
	atomic.AddInt64(&m.watchErrors, 1)
}

func (m *WatcherMetrics) RecordDroppedError() {
	atomic.AddInt64(&m.droppedErrors, 1)
}

func (m *WatcherMetrics) Stats() Stats {
	stats := Stats{
		EventsProcessed: atomic.LoadInt64(&m.eventsProcessed),
		Updates:         atomic.LoadInt64(&m.updates),
		Clears:          atomic.LoadInt64(&m.clears),
		ReadErrors:      atomic.LoadInt64(&m.readErrors),
		WatchErrors:     atomic.LoadInt64(&m.watchErrors),
		DroppedErrors:   atomic.LoadInt64(&m.droppedErrors),
	}
	if ns := m.lastEventTime.Load(); ns != 0 {
		stats.LastEventTime = time.Unix(0, ns)
	}
	return stats
}
