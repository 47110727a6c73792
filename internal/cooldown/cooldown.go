// Package cooldown rate-limits repeated command invocations per chat user.
package cooldown

import (
	"sync"
	"time"
)

// Gate tracks each user's last accepted invocation. The zero period admits
// everything.
type Gate struct {
	mu      sync.Mutex
	period  time.Duration
	lastUse map[string]time.Time
	now     func() time.Time
}

func NewGate(period time.Duration) *Gate {
	return &Gate{
		period:  period,
		lastUse: map[string]time.Time{},
		now:     time.Now,
	}
}

// Check admits the user and records the use, or reports the remaining wait.
// The remaining duration is rounded up to whole seconds for user-facing
// messages.
func (g *Gate) Check(userID string) (ok bool, remaining time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if last, seen := g.lastUse[userID]; seen {
		if elapsed := now.Sub(last); elapsed < g.period {
			rem := g.period - elapsed
			rounded := rem.Truncate(time.Second)
			if rounded < rem {
				rounded += time.Second
			}
			return false, rounded
		}
	}
	g.lastUse[userID] = now
	return true, 0
}

// Reset clears a user's cooldown, admitting their next invocation.
func (g *Gate) Reset(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.lastUse, userID)
}
