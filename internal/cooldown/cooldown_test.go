package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestGate(period time.Duration) (*Gate, *time.Time) {
	g := NewGate(period)
	clock := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return clock }
	return g, &clock
}

func TestGateAdmitsFirstUse(t *testing.T) {
	g, _ := newTestGate(30 * time.Second)

	ok, remaining := g.Check("user-1")
	assert.True(t, ok)
	assert.Zero(t, remaining)
}

func TestGateBlocksWithinPeriod(t *testing.T) {
	g, clock := newTestGate(30 * time.Second)
	g.Check("user-1")

	*clock = clock.Add(10 * time.Second)
	ok, remaining := g.Check("user-1")
	assert.False(t, ok)
	assert.Equal(t, 20*time.Second, remaining)

	*clock = clock.Add(20 * time.Second)
	ok, _ = g.Check("user-1")
	assert.True(t, ok)
}

func TestGateRemainingRoundsUp(t *testing.T) {
	g, clock := newTestGate(30 * time.Second)
	g.Check("user-1")

	*clock = clock.Add(10*time.Second + 500*time.Millisecond)
	ok, remaining := g.Check("user-1")
	assert.False(t, ok)
	assert.Equal(t, 20*time.Second, remaining)
}

func TestGateTracksUsersIndependently(t *testing.T) {
	g, _ := newTestGate(30 * time.Second)
	g.Check("user-1")

	ok, _ := g.Check("user-2")
	assert.True(t, ok)
}

func TestGateDeniedCheckDoesNotExtend(t *testing.T) {
	g, clock := newTestGate(30 * time.Second)
	g.Check("user-1")

	*clock = clock.Add(29 * time.Second)
	g.Check("user-1")

	*clock = clock.Add(2 * time.Second)
	ok, _ := g.Check("user-1")
	assert.True(t, ok)
}

func TestGateReset(t *testing.T) {
	g, _ := newTestGate(30 * time.Second)
	g.Check("user-1")
	g.Reset("user-1")

	ok, _ := g.Check("user-1")
	assert.True(t, ok)
}

func TestGateZeroPeriodAdmitsEverything(t *testing.T) {
	g, _ := newTestGate(0)
	for i := 0; i < 3; i++ {
		ok, _ := g.Check("user-1")
		assert.True(t, ok)
	}
}
