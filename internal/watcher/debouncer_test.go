package watcher

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer(t *testing.T) {
	debouncer := NewDebouncer(100 * time.Millisecond)
	var counter int32

	// Call debounce multiple times rapidly
	for i := 0; i < 5; i++ {
		debouncer.Debounce("test", func() {
			atomic.AddInt32(&counter, 1)
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&counter))
	assert.Equal(t, 0, debouncer.Pending())
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	debouncer := NewDebouncer(20 * time.Millisecond)
	var counter int32

	debouncer.Debounce("a", func() { atomic.AddInt32(&counter, 1) })
	debouncer.Debounce("b", func() { atomic.AddInt32(&counter, 1) })

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&counter) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncer_Cancel(t *testing.T) {
	debouncer := NewDebouncer(50 * time.Millisecond)
	var counter int32

	debouncer.Debounce("test", func() { atomic.AddInt32(&counter, 1) })
	assert.Equal(t, 1, debouncer.Pending())
	debouncer.Cancel("test")
	debouncer.Cancel("unknown")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&counter))
	assert.Equal(t, 0, debouncer.Pending())
}

func TestDebouncer_Stop(t *testing.T) {
	debouncer := NewDebouncer(50 * time.Millisecond)
	var counter int32

	debouncer.Debounce("a", func() { atomic.AddInt32(&counter, 1) })
	debouncer.Debounce("b", func() { atomic.AddInt32(&counter, 1) })
	debouncer.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&counter))
}
