package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var replayEpoch = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return replayEpoch.Add(time.Duration(ms) * time.Millisecond)
}

func kill(ms int, attacker, victim, causer string, headshot bool) Event {
	reason := "TorsoShot"
	if headshot {
		reason = "HeadShot"
	}
	return Event{
		Kind:         KindPlayerKill,
		At:           at(ms),
		Attacker:     attacker,
		Victim:       victim,
		CauserID:     causer,
		DamageReason: reason,
		Headshot:     headshot,
	}
}

func damage(ms int, attacker, victim string, amount float64, causer string) Event {
	return Event{
		Kind:     KindPlayerTakeDamage,
		At:       at(ms),
		Attacker: attacker,
		Victim:   victim,
		Damage:   amount,
		CauserID: causer,
	}
}

func position(ms int, character string, x, y, z float64, inVehicle bool) Event {
	return Event{
		Kind:      KindPlayerPosition,
		At:        at(ms),
		Character: character,
		Position:  Position{X: x, Y: y, Z: z},
		InVehicle: inVehicle,
	}
}

func TestReplayKillStreaks(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int
		want    []int
	}{
		{"no kills", nil, []int{}},
		{"single kill is not a streak", []int{0}, []int{}},
		{"two kills inside window", []int{0, 5000}, []int{2}},
		{"gap exactly at window still extends", []int{0, 10000}, []int{2}},
		{"gap just over window breaks", []int{0, 10001}, []int{}},
		{"sliding window chains", []int{0, 5000, 9000, 25000, 26000}, []int{3, 2}},
		{"trailing streak flushes", []int{0, 1000, 2000}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make([]Event, 0, len(tt.offsets))
			for i, off := range tt.offsets {
				victim := string(rune('a' + i))
				events = append(events, kill(off, "Subject", victim, "WeapAK47_C", false))
			}
			stats := Replay(events, "Subject")
			assert.Equal(t, tt.want, stats.KillStreaks)
			assert.Equal(t, len(tt.offsets), stats.Kills)
		})
	}
}

func TestReplayUnorderedEventsAreSorted(t *testing.T) {
	events := []Event{
		kill(26000, "Subject", "e", "WeapAK47_C", false),
		kill(0, "Subject", "a", "WeapAK47_C", false),
		kill(25000, "Subject", "d", "WeapAK47_C", false),
		kill(9000, "Subject", "c", "WeapAK47_C", false),
		kill(5000, "Subject", "b", "WeapAK47_C", false),
	}
	stats := Replay(events, "Subject")
	assert.Equal(t, []int{3, 2}, stats.KillStreaks)
}

func TestReplayDamageAttribution(t *testing.T) {
	events := []Event{
		damage(0, "Subject", "enemy1", 55.5, "WeapHK416_C"),
		damage(1000, "Subject", "enemy2", 44.5, "WeapHK416_C"),
		// Taken, not dealt.
		damage(2000, "enemy1", "Subject", 30, "WeapAK47_C"),
		// Environmental damage with no attacker.
		damage(3000, "", "Subject", 10, "BattleRoyaleModeController_Def_C"),
		// Negative amounts are clamped out.
		damage(4000, "Subject", "enemy1", -5, "WeapHK416_C"),
		// Attack events never contribute damage.
		{Kind: KindPlayerAttack, At: at(5000), Attacker: "Subject", CauserID: "WeapHK416_C"},
		// Other players' exchanges are ignored.
		damage(6000, "enemy1", "enemy2", 99, "WeapAK47_C"),
	}

	stats := Replay(events, "Subject")
	assert.InDelta(t, 100.0, stats.DamageDealt, 1e-9)
	assert.InDelta(t, 40.0, stats.DamageTaken, 1e-9)

	m416 := stats.WeaponStats["M416"]
	assert.InDelta(t, 100.0, m416.Damage, 1e-9)
	assert.Zero(t, m416.Kills)
}

func TestReplaySelfDamageIsTaken(t *testing.T) {
	// Victim branch wins when the subject damages themselves.
	events := []Event{damage(0, "Subject", "Subject", 25, "ProjGrenade_C")}
	stats := Replay(events, "Subject")
	assert.InDelta(t, 25.0, stats.DamageTaken, 1e-9)
	assert.Zero(t, stats.DamageDealt)
}

func TestReplaySelfKillExcluded(t *testing.T) {
	events := []Event{kill(0, "Subject", "Subject", "ProjGrenade_C", false)}
	stats := Replay(events, "Subject")
	assert.Zero(t, stats.Kills)
	assert.Empty(t, stats.KillStreaks)
	assert.Empty(t, stats.WeaponStats)
}

func TestReplayNameMatchingIsCaseInsensitive(t *testing.T) {
	events := []Event{
		kill(0, "SUBJECT", "enemy1", "WeapAK47_C", true),
		damage(1000, "subject", "enemy1", 40, "WeapAK47_C"),
	}
	stats := Replay(events, "Subject")
	assert.Equal(t, 1, stats.Kills)
	assert.Equal(t, 1, stats.HeadshotKills)
	assert.InDelta(t, 40.0, stats.DamageDealt, 1e-9)

	akm := stats.WeaponStats["AKM"]
	assert.Equal(t, 1, akm.Kills)
	assert.Equal(t, 1, akm.Headshots)
}

func TestReplayEmptyNameNeverMatches(t *testing.T) {
	events := []Event{damage(0, "", "", 50, "WeapAK47_C")}
	stats := Replay(events, "")
	assert.Zero(t, stats.DamageDealt)
	assert.Zero(t, stats.DamageTaken)
}

func TestReplayMovement(t *testing.T) {
	events := []Event{
		position(0, "Subject", 0, 0, 0, false),
		// 3-4-5 triangle on foot; z is ignored.
		position(1000, "Subject", 300, 400, 9999, false),
		// Same again, by vehicle.
		position(2000, "Subject", 600, 800, 0, true),
		// Other players never move the subject's accumulator.
		position(3000, "enemy1", 5000, 5000, 0, false),
	}

	stats := Replay(events, "Subject")
	assert.InDelta(t, 500.0, stats.Movement.Walking, 1e-9)
	assert.InDelta(t, 500.0, stats.Movement.Vehicle, 1e-9)
	assert.Zero(t, stats.Movement.Swimming)
	assert.InDelta(t, 1000.0, stats.Movement.Total(), 1e-9)
}

func TestReplayStationaryVehicleLegAddsNothing(t *testing.T) {
	events := []Event{
		position(0, "Subject", 0, 0, 0, false),
		position(1000, "Subject", 3, 4, 0, false),
		position(2000, "Subject", 3, 4, 0, true),
	}
	stats := Replay(events, "Subject")
	assert.InDelta(t, 5.0, stats.Movement.Walking, 1e-9)
	assert.Zero(t, stats.Movement.Vehicle)
	assert.InDelta(t, 5.0, stats.Movement.Total(), 1e-9)
}

func TestReplayFirstPositionCountsNoDistance(t *testing.T) {
	stats := Replay([]Event{position(0, "Subject", 12345, 67890, 0, false)}, "Subject")
	assert.Zero(t, stats.Movement.Total())
}

func TestReplayEmptyLog(t *testing.T) {
	stats := Replay(nil, "Subject")
	require.NotNil(t, stats.KillStreaks)
	require.NotNil(t, stats.WeaponStats)
	assert.Empty(t, stats.KillStreaks)
	assert.Empty(t, stats.WeaponStats)
}
