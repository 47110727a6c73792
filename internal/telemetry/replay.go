package telemetry

import (
	"math"
	"sort"
	"strings"
	"time"

	"pubg-tracker/internal/weapons"
)

// KillStreakWindow is the longest gap between consecutive kills that still
// extends a streak. The window slides from the most recent kill, so a spree
// with gaps under the window all merges into one streak.
const KillStreakWindow = 10 * time.Second

// WeaponTally accumulates one canonical weapon's numbers during replay.
type WeaponTally struct {
	Kills     int
	Headshots int
	Damage    float64
}

// MovementAccum is the running distance breakdown, in raw telemetry units.
type MovementAccum struct {
	Vehicle  float64
	Walking  float64
	Swimming float64
}

func (m MovementAccum) Total() float64 {
	return m.Vehicle + m.Walking + m.Swimming
}

// PlayerStats is the result of replaying one match's event log for a single
// subject. It is mutated only inside Replay and immutable afterwards.
type PlayerStats struct {
	DamageDealt   float64
	DamageTaken   float64
	Kills         int
	HeadshotKills int
	KillStreaks   []int
	WeaponStats   map[string]WeaponTally
	Movement      MovementAccum
}

// Replay streams once through the ordered event log and reconstructs the
// subject's combat timeline. Name comparison is case-insensitive. Events for
// other players carry no state across the pass.
//
// Damage dealt is attributed from PlayerTakeDamage events where the subject
// is the attacker; PlayerAttack events are not a damage source, so the two
// can never double count.
func Replay(events []Event, subjectName string) PlayerStats {
	stats := PlayerStats{
		KillStreaks: []int{},
		WeaponStats: map[string]WeaponTally{},
	}

	// Streak detection depends on temporal order; the upstream log is
	// ordered but this is not contractual, so sort before replaying.
	if !sort.SliceIsSorted(events, func(i, j int) bool { return events[i].At.Before(events[j].At) }) {
		sorted := make([]Event, len(events))
		copy(sorted, events)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At.Before(sorted[j].At) })
		events = sorted
	}

	var (
		lastKillAt    time.Time
		currentStreak int
		lastPos       Position
		hasLastPos    bool
	)

	isSubject := func(name string) bool {
		return name != "" && strings.EqualFold(name, subjectName)
	}

	for _, ev := range events {
		switch ev.Kind {
		case KindPlayerTakeDamage:
			if isSubject(ev.Victim) {
				if ev.Damage > 0 {
					stats.DamageTaken += ev.Damage
				}
				continue
			}
			if isSubject(ev.Attacker) {
				damage := ev.Damage
				if damage < 0 {
					damage = 0
				}
				stats.DamageDealt += damage
				name := weapons.DisplayName(ev.CauserID)
				tally := stats.WeaponStats[name]
				tally.Damage += damage
				stats.WeaponStats[name] = tally
			}

		case KindPlayerAttack:
			// Attack events carry no damage amount; dealt damage comes
			// from the take-damage attacker branch above.

		case KindPlayerKill:
			if !isSubject(ev.Attacker) || isSubject(ev.Victim) {
				continue
			}
			stats.Kills++
			name := weapons.DisplayName(ev.CauserID)
			tally := stats.WeaponStats[name]
			tally.Kills++
			if ev.Headshot {
				tally.Headshots++
				stats.HeadshotKills++
			}
			stats.WeaponStats[name] = tally

			if !lastKillAt.IsZero() && ev.At.Sub(lastKillAt) <= KillStreakWindow {
				currentStreak++
			} else {
				if currentStreak > 1 {
					stats.KillStreaks = append(stats.KillStreaks, currentStreak)
				}
				currentStreak = 1
			}
			lastKillAt = ev.At

		case KindPlayerPosition:
			if !isSubject(ev.Character) {
				continue
			}
			if hasLastPos {
				d := distance2D(lastPos, ev.Position)
				if ev.InVehicle {
					stats.Movement.Vehicle += d
				} else {
					stats.Movement.Walking += d
				}
			}
			lastPos = ev.Position
			hasLastPos = true
		}
	}

	if currentStreak > 1 {
		stats.KillStreaks = append(stats.KillStreaks, currentStreak)
	}

	return stats
}

func distance2D(a, b Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
