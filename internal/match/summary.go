package match

import (
	"sort"

	"pubg-tracker/internal/domain"
)

// RankedPlayer is one row of a match's kill ranking.
type RankedPlayer struct {
	Name        string
	Kills       int
	Assists     int
	WinPlace    int
	DamageDealt int
}

// WinningTeam summarizes the roster that won the match.
type WinningTeam struct {
	TeamID     string
	Members    []string
	TotalKills int
}

// KillRanking returns the top N participants by kills, breaking ties by
// final placement.
func KillRanking(doc *domain.MatchDocument, topN int) []RankedPlayer {
	ranked := make([]RankedPlayer, 0, len(doc.Participants))
	for _, p := range doc.Participants {
		ranked = append(ranked, RankedPlayer{
			Name:        p.PlayerName,
			Kills:       p.Stats.Kills,
			Assists:     p.Stats.Assists,
			WinPlace:    p.Stats.WinPlace,
			DamageDealt: int(p.Stats.DamageDealt + 0.5),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Kills != ranked[j].Kills {
			return ranked[i].Kills > ranked[j].Kills
		}
		return ranked[i].WinPlace < ranked[j].WinPlace
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// Winner resolves the winning roster into member names and a team kill
// total. Returns false when the document carries no winner.
func Winner(doc *domain.MatchDocument) (WinningTeam, bool) {
	roster, ok := WinningRoster(doc)
	if !ok {
		return WinningTeam{}, false
	}

	byID := make(map[string]*domain.Participant, len(doc.Participants))
	for i := range doc.Participants {
		byID[doc.Participants[i].ParticipantID] = &doc.Participants[i]
	}

	team := WinningTeam{TeamID: roster.TeamID}
	for _, id := range roster.ParticipantIDs {
		p, ok := byID[id]
		if !ok {
			continue
		}
		team.Members = append(team.Members, p.PlayerName)
		team.TotalKills += p.Stats.Kills
	}
	return team, true
}
