package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCache(ttl time.Duration) (*TTL[string, int], *time.Time) {
	c := NewTTL[string, int](ttl)
	clock := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }
	return c, &clock
}

func TestTTLGetSet(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, c.Len())
}

func TestTTLExpiry(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	c.Set("a", 1)

	*clock = clock.Add(59 * time.Second)
	_, ok := c.Get("a")
	assert.True(t, ok)

	*clock = clock.Add(2 * time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestTTLSweep(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	*clock = clock.Add(30 * time.Second)
	c.Set("c", 3)

	*clock = clock.Add(45 * time.Second)
	assert.Equal(t, 2, c.Sweep())
	assert.Equal(t, 1, c.Len())
}

func TestTTLZeroDurationDisablesCaching(t *testing.T) {
	c, _ := newTestCache(0)
	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestTTLClear(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("a", 1)
	c.Clear()
	assert.Zero(t, c.Len())
}
