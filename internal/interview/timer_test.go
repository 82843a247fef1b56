package interview

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimer_TickCountsDown(t *testing.T) {
	var fired atomic.Int32
	timer := NewTimer(3, func() { fired.Add(1) })

	assert.Equal(t, 3, timer.Remaining())

	assert.False(t, timer.tick())
	assert.Equal(t, 2, timer.Remaining())
	assert.False(t, timer.tick())
	assert.True(t, timer.tick())

	assert.Equal(t, 0, timer.Remaining())
	assert.Equal(t, int32(1), fired.Load())
}

func TestTimer_ExpiresExactlyOnce(t *testing.T) {
	var fired atomic.Int32
	timer := NewTimer(1, func() { fired.Add(1) })

	assert.True(t, timer.tick())
	assert.True(t, timer.tick())
	assert.True(t, timer.tick())

	assert.Equal(t, int32(1), fired.Load())
}

func TestTimer_PauseFreezesCountdown(t *testing.T) {
	timer := NewTimer(5, nil)

	timer.Pause()
	assert.False(t, timer.tick())
	assert.False(t, timer.tick())
	assert.Equal(t, 5, timer.Remaining())

	timer.Resume()
	assert.False(t, timer.tick())
	assert.Equal(t, 4, timer.Remaining())
}

func TestTimer_StopDoesNotFireExpiry(t *testing.T) {
	var fired atomic.Int32
	timer := NewTimer(5, func() { fired.Add(1) })
	timer.Start()

	timer.Stop()
	timer.Stop() // safe to call again

	assert.True(t, timer.tick())
	assert.Equal(t, int32(0), fired.Load())
	assert.Equal(t, 5, timer.Remaining())
}
