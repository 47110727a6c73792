package command

import (
	"fmt"
	"strings"

	"pubg-tracker/internal/render"
)

// maxReplyWeapons caps how many weapon lines a chat reply carries; the
// full table is only for the HTTP surface.
const maxReplyWeapons = 5

func formatMatchDetails(v *render.MatchDetailsView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s %s | #%d/%d | %s\n",
		v.PlayerName, v.Map, v.Mode, v.Rank, v.TotalPlayers, v.Time)
	fmt.Fprintf(&b, "Kills %d (HS %d) | Assists %d | DBNOs %d | Damage %d dealt / %d taken\n",
		v.Kills, v.HeadshotKills, v.Assists, v.DBNOs, v.DamageDealt, v.DamageTaken)
	fmt.Fprintf(&b, "Survived %s | Longest kill %dm | Moved %dm (%dm on foot, %dm by vehicle)",
		v.TimeSurvived, v.LongestKill, v.Movement.Total, v.Movement.Walking, v.Movement.Vehicle)

	if len(v.KillStreaks) > 0 {
		streaks := make([]string, len(v.KillStreaks))
		for i, s := range v.KillStreaks {
			streaks[i] = fmt.Sprintf("%dx", s)
		}
		fmt.Fprintf(&b, "\nKill streaks: %s", strings.Join(streaks, ", "))
	}

	for i, w := range v.Weapons {
		if i == maxReplyWeapons {
			break
		}
		if i == 0 {
			b.WriteString("\nWeapons:")
		}
		fmt.Fprintf(&b, "\n  %s: %d kills, %d HS, %d dmg", w.Name, w.Kills, w.Headshots, w.Damage)
	}

	if !v.HasTelemetry {
		b.WriteString("\n(telemetry unavailable, base stats only)")
	}
	return b.String()
}

func formatMatchSummary(v *render.MatchSummaryView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s | %d players | %s | %s\n",
		v.Map, v.Mode, v.TotalPlayers, v.Duration, v.Time)

	if v.WinningTeam != nil {
		fmt.Fprintf(&b, "Winner: team %s (%s) with %d kills\n",
			v.WinningTeam.TeamID, strings.Join(v.WinningTeam.Members, ", "), v.WinningTeam.TotalKills)
	} else {
		b.WriteString("Winner: unknown\n")
	}

	b.WriteString("Top kills:")
	for i, r := range v.KillRanking {
		fmt.Fprintf(&b, "\n  %d. %s — %d kills, %d dmg, #%d", i+1, r.Name, r.Kills, r.DamageDealt, r.Rank)
	}
	return b.String()
}

func formatSeason(v *render.SeasonView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s season stats (%s, %s)\n", v.PlayerName, v.SeasonID, v.Platform)
	writeSeasonMode(&b, "Overall", v.Overall)
	writeSeasonMode(&b, "Solo", v.Solo)
	writeSeasonMode(&b, "Duo", v.Duo)
	writeSeasonMode(&b, "Squad", v.Squad)
	return strings.TrimRight(b.String(), "\n")
}

func writeSeasonMode(b *strings.Builder, label string, m render.SeasonModeView) {
	fmt.Fprintf(b, "%s: %d matches, %d wins (%s), %d kills, KD %s\n",
		label, m.Matches, m.Wins, m.WinRate, m.Kills, m.KD)
}

func formatRecentMatches(playerName string, views []render.RecentMatchView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recent matches for %s:", playerName)
	for _, v := range views {
		fmt.Fprintf(&b, "\n%s %s | #%d/%d | %d kills, %d dmg | %s",
			v.Map, v.Mode, v.Rank, v.TotalPlayers, v.Stats.Kills, v.Stats.DamageDealt, v.Time)
		if len(v.Teammates) > 0 {
			names := make([]string, len(v.Teammates))
			for i, tm := range v.Teammates {
				names[i] = tm.Name
			}
			fmt.Fprintf(&b, " | with %s", strings.Join(names, ", "))
		}
	}
	return b.String()
}
