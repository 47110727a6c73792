package match

import (
	"math"
	"time"

	"pubg-tracker/internal/domain"
	"pubg-tracker/internal/telemetry"
)

// Aggregate merges a participant's base stat block with replay-derived
// telemetry stats into one normalized record. Base stats are the source of
// truth for kills, assists and placement; telemetry is the source of truth
// for weapon attribution, streaks and damage when available. Given the same
// two inputs the output is identical apart from GeneratedAt.
func Aggregate(doc *domain.MatchDocument, participant *domain.Participant, replayed *telemetry.PlayerStats) domain.AggregatedMatchStats {
	base := participant.Stats

	agg := domain.AggregatedMatchStats{
		MatchID:    doc.MatchID,
		PlayerName: participant.PlayerName,

		Kills:           base.Kills,
		Assists:         base.Assists,
		DBNOs:           base.DBNOs,
		HeadshotKills:   base.HeadshotKills,
		Heals:           base.Heals,
		Boosts:          base.Boosts,
		Revives:         base.Revives,
		KillPlace:       base.KillPlace,
		WinPlace:        base.WinPlace,
		RoadKills:       base.RoadKills,
		TeamKills:       base.TeamKills,
		LongestKill:     round(base.LongestKill),
		WeaponsAcquired: base.WeaponsAcquired,
		VehicleDestroys: base.VehicleDestroys,
		TimeSurvived:    round(base.TimeSurvived),

		WeaponStats: map[string]domain.WeaponStat{},
		KillStreaks: []int{},

		GeneratedAt: time.Now().UTC(),
	}

	if replayed == nil {
		agg.DamageDealt = round(base.DamageDealt)
		agg.DamageTaken = round(base.DamageReceived)
		agg.Movement = domain.Movement{
			Total:    round(base.WalkDistance + base.RideDistance + base.SwimDistance),
			Vehicle:  round(base.RideDistance),
			Walking:  round(base.WalkDistance),
			Swimming: round(base.SwimDistance),
		}
		return agg
	}

	agg.HasTelemetry = true
	agg.DamageDealt = round(replayed.DamageDealt)
	agg.DamageTaken = round(replayed.DamageTaken)
	agg.Movement = domain.Movement{
		Total:    round(replayed.Movement.Total()),
		Vehicle:  round(replayed.Movement.Vehicle),
		Walking:  round(replayed.Movement.Walking),
		Swimming: round(replayed.Movement.Swimming),
	}

	for name, tally := range replayed.WeaponStats {
		damage := round(tally.Damage)
		if tally.Kills == 0 && damage == 0 {
			continue
		}
		agg.WeaponStats[name] = domain.WeaponStat{
			Kills:     tally.Kills,
			Headshots: tally.Headshots,
			Damage:    damage,
		}
	}

	agg.KillStreaks = append(agg.KillStreaks, replayed.KillStreaks...)

	return agg
}

func round(f float64) int {
	return int(math.Round(f))
}
