package watcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventKind(t *testing.T) {
	assert.True(t, WatchedEvents.Has(Modified))
	assert.True(t, WatchedEvents.Has(Created))
	assert.True(t, WatchedEvents.Has(Deleted))
	assert.False(t, Modified.Has(Deleted))

	assert.Equal(t, "modified", Modified.String())
	assert.Equal(t, "modified|created|deleted", WatchedEvents.String())
	assert.Equal(t, "none", EventKind(0).String())
}

func TestSetupErrorMessages(t *testing.T) {
	err := &WatchSetupError{Path: "/a", Err: ErrNotRegularFile}
	assert.Equal(t, "failed to watch /a: path is not a regular file", err.Error())

	readErr := &FileReadError{Path: "/a", Err: ErrInvalidPath}
	assert.Equal(t, "failed to read /a: invalid path", readErr.Error())
}
