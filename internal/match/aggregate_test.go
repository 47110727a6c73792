package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubg-tracker/internal/domain"
	"pubg-tracker/internal/telemetry"
)

func TestAggregateWithoutTelemetry(t *testing.T) {
	doc := testDocument()
	participant := &doc.Participants[0]
	participant.Stats.DamageDealt = 345.4
	participant.Stats.DamageReceived = 120.6
	participant.Stats.WalkDistance = 1500.2
	participant.Stats.RideDistance = 3000.9
	participant.Stats.SwimDistance = 10.5

	agg := Aggregate(doc, participant, nil)

	assert.Equal(t, "match-1", agg.MatchID)
	assert.Equal(t, "Alice", agg.PlayerName)
	assert.False(t, agg.HasTelemetry)
	assert.Equal(t, 345, agg.DamageDealt)
	assert.Equal(t, 121, agg.DamageTaken)
	assert.Equal(t, 4512, agg.Movement.Total)
	assert.Equal(t, 1500, agg.Movement.Walking)
	assert.Equal(t, 3001, agg.Movement.Vehicle)
	assert.Equal(t, 11, agg.Movement.Swimming)

	require.NotNil(t, agg.WeaponStats)
	require.NotNil(t, agg.KillStreaks)
	assert.Empty(t, agg.WeaponStats)
	assert.Empty(t, agg.KillStreaks)
}

func TestAggregateWithTelemetry(t *testing.T) {
	doc := testDocument()
	participant := &doc.Participants[0]
	participant.Stats.DamageDealt = 500 // telemetry wins over base

	replayed := &telemetry.PlayerStats{
		DamageDealt: 612.4,
		DamageTaken: 88.6,
		KillStreaks: []int{3, 2},
		WeaponStats: map[string]telemetry.WeaponTally{
			"M416":   {Kills: 3, Headshots: 1, Damage: 412.4},
			"AKM":    {Kills: 0, Damage: 200.0},
			"Pan":    {Kills: 0, Damage: 0.3}, // rounds to zero, pruned
			"Vector": {Kills: 0, Damage: 0},   // pruned
		},
		Movement: telemetry.MovementAccum{Walking: 1200.4, Vehicle: 800.6},
	}

	agg := Aggregate(doc, participant, replayed)

	assert.True(t, agg.HasTelemetry)
	assert.Equal(t, 612, agg.DamageDealt)
	assert.Equal(t, 89, agg.DamageTaken)
	assert.Equal(t, 2001, agg.Movement.Total)
	assert.Equal(t, []int{3, 2}, agg.KillStreaks)

	require.Len(t, agg.WeaponStats, 2)
	assert.Equal(t, domain.WeaponStat{Kills: 3, Headshots: 1, Damage: 412}, agg.WeaponStats["M416"])
	assert.Equal(t, domain.WeaponStat{Damage: 200}, agg.WeaponStats["AKM"])
}

func TestAggregateKeepsZeroDamageWeaponWithKills(t *testing.T) {
	doc := testDocument()
	replayed := &telemetry.PlayerStats{
		KillStreaks: []int{},
		WeaponStats: map[string]telemetry.WeaponTally{
			// A kill with no recorded damage still counts.
			"Frag Grenade": {Kills: 1},
		},
	}

	agg := Aggregate(doc, &doc.Participants[0], replayed)
	assert.Equal(t, domain.WeaponStat{Kills: 1}, agg.WeaponStats["Frag Grenade"])
}

func TestAggregateKeepsDamageOnlyWeapon(t *testing.T) {
	doc := testDocument()
	replayed := &telemetry.PlayerStats{
		KillStreaks: []int{},
		WeaponStats: map[string]telemetry.WeaponTally{
			"SKS": {Kills: 0, Damage: 42},
		},
	}

	agg := Aggregate(doc, &doc.Participants[0], replayed)
	assert.Equal(t, domain.WeaponStat{Damage: 42}, agg.WeaponStats["SKS"])
}

func TestAggregateIsIdempotentApartFromGeneratedAt(t *testing.T) {
	doc := testDocument()
	replayed := &telemetry.PlayerStats{
		DamageDealt: 300,
		KillStreaks: []int{2},
		WeaponStats: map[string]telemetry.WeaponTally{"M24": {Kills: 2, Damage: 300}},
	}

	first := Aggregate(doc, &doc.Participants[0], replayed)
	second := Aggregate(doc, &doc.Participants[0], replayed)

	first.GeneratedAt = second.GeneratedAt
	assert.Equal(t, first, second)
}

func TestAggregateStreaksAreCopied(t *testing.T) {
	doc := testDocument()
	replayed := &telemetry.PlayerStats{
		KillStreaks: []int{2, 3},
		WeaponStats: map[string]telemetry.WeaponTally{},
	}

	agg := Aggregate(doc, &doc.Participants[0], replayed)
	replayed.KillStreaks[0] = 99
	assert.Equal(t, []int{2, 3}, agg.KillStreaks)
}
