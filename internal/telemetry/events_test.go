package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvents(t *testing.T) {
	body := []byte(`[
		{"_T":"LogPlayerKill","_D":"2026-03-14T12:00:00Z",
		 "killer":{"name":"Alice"},"victim":{"name":"Bob"},
		 "damageCauserName":"WeapAK47_C","damageReason":"HeadShot"},
		{"_T":"LogPlayerTakeDamage","_D":"2026-03-14T12:00:01Z",
		 "attacker":{"name":"Alice"},"victim":{"name":"Bob"},
		 "damage":42.5,"damageCauserName":"WeapAK47_C","damageReason":"TorsoShot"},
		{"_T":"LogPlayerPosition","_D":"2026-03-14T12:00:02Z",
		 "character":{"name":"Alice","location":{"x":1,"y":2,"z":3}},
		 "vehicle":{"vehicleType":"WheeledVehicle"}},
		{"_T":"LogItemPickup","_D":"2026-03-14T12:00:03Z"},
		{"_T":"LogPlayerKill","_D":"not-a-timestamp",
		 "killer":{"name":"Alice"},"victim":{"name":"Bob"}},
		{"_T":"LogPlayerKill","_D":"2026-03-14T12:00:04Z","victim":{"name":"Bob"}}
	]`)

	events, skipped, err := ParseEvents(body)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, events, 3)

	killEv := events[0]
	assert.Equal(t, KindPlayerKill, killEv.Kind)
	assert.Equal(t, "Alice", killEv.Attacker)
	assert.Equal(t, "Bob", killEv.Victim)
	assert.Equal(t, "WeapAK47_C", killEv.CauserID)
	assert.True(t, killEv.Headshot)
	assert.Equal(t, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), killEv.At)

	dmgEv := events[1]
	assert.Equal(t, KindPlayerTakeDamage, dmgEv.Kind)
	assert.InDelta(t, 42.5, dmgEv.Damage, 1e-9)
	assert.False(t, dmgEv.Headshot)

	posEv := events[2]
	assert.Equal(t, KindPlayerPosition, posEv.Kind)
	assert.Equal(t, Position{X: 1, Y: 2, Z: 3}, posEv.Position)
	assert.True(t, posEv.InVehicle)
}

func TestParseEventsKillV2FinisherFallback(t *testing.T) {
	body := []byte(`[
		{"_T":"LogPlayerKillV2","_D":"2026-03-14T12:00:00Z",
		 "finisher":{"name":"Alice"},"victim":{"name":"Bob"},
		 "finishDamageInfo":{"damageCauserName":"WeapHK416_C","damageReason":"HeadShot","damage":98}}
	]`)

	events, skipped, err := ParseEvents(body)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "Alice", ev.Attacker)
	assert.Equal(t, "WeapHK416_C", ev.CauserID)
	assert.True(t, ev.Headshot)
}

func TestParseEventsVehicleNull(t *testing.T) {
	body := []byte(`[
		{"_T":"LogPlayerPosition","_D":"2026-03-14T12:00:00Z",
		 "character":{"name":"Alice","location":{"x":0,"y":0,"z":0}},
		 "vehicle":null}
	]`)

	events, _, err := ParseEvents(body)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].InVehicle)
}

func TestParseEventsMalformedElementIsSkipped(t *testing.T) {
	body := []byte(`[{"_T":"LogPlayerKill","_D":"2026-03-14T12:00:00Z","killer":{"name":"A"},"victim":{"name":"B"}}, "not an object"]`)

	events, skipped, err := ParseEvents(body)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	assert.Len(t, events, 1)
}

func TestParseEventsNotAnArray(t *testing.T) {
	_, _, err := ParseEvents([]byte(`{"_T":"LogPlayerKill"}`))
	assert.Error(t, err)
}
