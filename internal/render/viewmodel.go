// Package render shapes aggregated stats into the flat view models the
// presentation layer consumes. No business logic lives here; every field
// gets a safe default so templates never see an absent value.
package render

import (
	"sort"
	"time"

	"pubg-tracker/internal/domain"
)

// MatchDetailsView is the template-facing shape of one player's match.
type MatchDetailsView struct {
	MatchID    string `json:"matchId"`
	PlayerName string `json:"playerName"`
	Platform   string `json:"platform"`
	Time       string `json:"time"`
	Map        string `json:"map"`
	Mode       string `json:"mode"`
	Duration   string `json:"duration"`

	Rank         int `json:"rank"`
	TotalPlayers int `json:"totalPlayers"`

	Kills         int `json:"kills"`
	Assists       int `json:"assists"`
	DBNOs         int `json:"dbnos"`
	HeadshotKills int `json:"headshotKills"`
	DamageDealt   int `json:"damageDealt"`
	DamageTaken   int `json:"damageTaken"`
	Heals         int `json:"heals"`
	Boosts        int `json:"boosts"`
	Revives       int `json:"revives"`
	LongestKill   int `json:"longestKill"`
	TimeSurvived  string `json:"timeSurvived"`

	Movement    MovementView `json:"movement"`
	Weapons     []WeaponView `json:"weapons"`
	KillStreaks []int        `json:"killStreaks"`

	HasTelemetry bool   `json:"hasTelemetry"`
	GeneratedAt  string `json:"generatedAt"`
}

type MovementView struct {
	Total    int `json:"total"`
	Vehicle  int `json:"vehicle"`
	Walking  int `json:"walking"`
	Swimming int `json:"swimming"`
}

type WeaponView struct {
	Name      string `json:"name"`
	Kills     int    `json:"kills"`
	Headshots int    `json:"headshots"`
	Damage    int    `json:"damage"`
}

// MatchDetails reshapes an aggregated record into its view model. Weapons
// are emitted in a stable order (kills desc, then damage desc, then name)
// so repeated renders of the same record are identical.
func MatchDetails(doc *domain.MatchDocument, agg *domain.AggregatedMatchStats, playerName string, platform domain.Platform) MatchDetailsView {
	view := MatchDetailsView{
		MatchID:    doc.MatchID,
		PlayerName: playerName,
		Platform:   string(platform),
		Time:       doc.CreatedAt.UTC().Format(time.RFC3339),
		Map:        MapName(doc.MapID),
		Mode:       GameMode(doc.GameMode),
		Duration:   FormatDuration(doc.DurationSeconds),

		TotalPlayers: len(doc.Participants),

		Weapons:     []WeaponView{},
		KillStreaks: []int{},
	}
	if agg == nil {
		return view
	}

	view.Rank = agg.WinPlace
	view.Kills = agg.Kills
	view.Assists = agg.Assists
	view.DBNOs = agg.DBNOs
	view.HeadshotKills = agg.HeadshotKills
	view.DamageDealt = agg.DamageDealt
	view.DamageTaken = agg.DamageTaken
	view.Heals = agg.Heals
	view.Boosts = agg.Boosts
	view.Revives = agg.Revives
	view.LongestKill = agg.LongestKill
	view.TimeSurvived = FormatDuration(agg.TimeSurvived)
	view.Movement = MovementView(agg.Movement)
	view.HasTelemetry = agg.HasTelemetry
	view.GeneratedAt = agg.GeneratedAt.UTC().Format(time.RFC3339)

	for name, ws := range agg.WeaponStats {
		view.Weapons = append(view.Weapons, WeaponView{
			Name:      name,
			Kills:     ws.Kills,
			Headshots: ws.Headshots,
			Damage:    ws.Damage,
		})
	}
	sort.Slice(view.Weapons, func(i, j int) bool {
		a, b := view.Weapons[i], view.Weapons[j]
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		if a.Damage != b.Damage {
			return a.Damage > b.Damage
		}
		return a.Name < b.Name
	})

	view.KillStreaks = append(view.KillStreaks, agg.KillStreaks...)

	return view
}
