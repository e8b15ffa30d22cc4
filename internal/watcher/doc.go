// Package watcher keeps the word set of a single file in sync with the file
// on disk and notifies subscribers when it changes.
//
// A FileWatcher receives events from a Source (fsnotify by default), rereads
// the file on modify and create, reconciles the result with the current word
// set and emits an Updated notification. A delete empties the set and emits
// Cleared without touching the disk. Event handling is serialized per
// watcher; CurrentWords returns an immutable snapshot and never blocks.
package watcher
