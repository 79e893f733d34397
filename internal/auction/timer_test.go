package auction

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForGen(t *testing.T, fired chan uint64) uint64 {
	t.Helper()
	select {
	case gen := <-fired:
		return gen
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for countdown expiry")
		return 0
	}
}

func TestCountdownExpires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fired := make(chan uint64, 1)
	c := newCountdown(clock, func(gen uint64) { fired <- gen })

	c.start(15 * time.Second)
	assert.Equal(t, 15, c.remainingSeconds())

	clock.Advance(5 * time.Second)
	assert.Equal(t, 10, c.remainingSeconds())

	clock.Advance(10 * time.Second)
	gen := waitForGen(t, fired)
	assert.True(t, c.currentGen(gen))
	assert.Equal(t, 0, c.remainingSeconds())
}

func TestCountdownPauseFreezes(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fired := make(chan uint64, 1)
	c := newCountdown(clock, func(gen uint64) { fired <- gen })

	c.start(15 * time.Second)
	clock.Advance(7 * time.Second)
	c.pause()
	assert.Equal(t, 8, c.remainingSeconds())

	// Time passing while paused changes nothing.
	clock.Advance(time.Hour)
	assert.Equal(t, 8, c.remainingSeconds())
	select {
	case <-fired:
		t.Fatal("countdown fired while paused")
	default:
	}

	c.resume()
	clock.Advance(8 * time.Second)
	waitForGen(t, fired)
}

func TestCountdownRestartInvalidatesOldGeneration(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fired := make(chan uint64, 2)
	c := newCountdown(clock, func(gen uint64) { fired <- gen })

	c.start(10 * time.Second)
	c.start(10 * time.Second)
	clock.Advance(10 * time.Second)

	gen := waitForGen(t, fired)
	assert.True(t, c.currentGen(gen))
	select {
	case <-fired:
		t.Fatal("stale generation fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCountdownStop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fired := make(chan uint64, 1)
	c := newCountdown(clock, func(gen uint64) { fired <- gen })

	c.start(5 * time.Second)
	c.stop()
	assert.Equal(t, 0, c.remainingSeconds())

	clock.Advance(time.Minute)
	select {
	case <-fired:
		t.Fatal("stopped countdown fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCountdownExtendTo(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fired := make(chan uint64, 1)
	c := newCountdown(clock, func(gen uint64) { fired <- gen })

	c.start(15 * time.Second)
	clock.Advance(13 * time.Second)
	require.Equal(t, 2, c.remainingSeconds())

	c.extendTo(5 * time.Second)
	assert.Equal(t, 5, c.remainingSeconds())

	// Already above the floor: no change.
	c.extendTo(3 * time.Second)
	assert.Equal(t, 5, c.remainingSeconds())

	clock.Advance(5 * time.Second)
	waitForGen(t, fired)
}
