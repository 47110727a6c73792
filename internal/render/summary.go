package render

import (
	"time"

	"pubg-tracker/internal/domain"
	"pubg-tracker/internal/match"
)

// MatchSummaryView is the match-wide report: basic info, winning team and
// kill ranking.
type MatchSummaryView struct {
	MatchID      string           `json:"matchId"`
	Time         string           `json:"time"`
	Map          string           `json:"map"`
	Mode         string           `json:"mode"`
	Duration     string           `json:"duration"`
	TotalPlayers int              `json:"totalPlayers"`
	WinningTeam  *WinningTeamView `json:"winningTeam,omitempty"`
	KillRanking  []RankedView     `json:"killRanking"`
}

type WinningTeamView struct {
	TeamID     string   `json:"teamId"`
	Members    []string `json:"members"`
	TotalKills int      `json:"totalKills"`
}

type RankedView struct {
	Name        string `json:"name"`
	Kills       int    `json:"kills"`
	Assists     int    `json:"assists"`
	Rank        int    `json:"rank"`
	DamageDealt int    `json:"damageDealt"`
}

// MatchSummary reshapes a match document plus precomputed ranking into its
// view model.
func MatchSummary(doc *domain.MatchDocument, winner *match.WinningTeam, ranking []match.RankedPlayer) MatchSummaryView {
	view := MatchSummaryView{
		MatchID:      doc.MatchID,
		Time:         doc.CreatedAt.UTC().Format(time.RFC3339),
		Map:          MapName(doc.MapID),
		Mode:         GameMode(doc.GameMode),
		Duration:     FormatDuration(doc.DurationSeconds),
		TotalPlayers: len(doc.Participants),
		KillRanking:  []RankedView{},
	}

	if winner != nil {
		members := winner.Members
		if members == nil {
			members = []string{}
		}
		view.WinningTeam = &WinningTeamView{
			TeamID:     winner.TeamID,
			Members:    members,
			TotalKills: winner.TotalKills,
		}
	}

	for _, r := range ranking {
		view.KillRanking = append(view.KillRanking, RankedView{
			Name:        r.Name,
			Kills:       r.Kills,
			Assists:     r.Assists,
			Rank:        r.WinPlace,
			DamageDealt: r.DamageDealt,
		})
	}
	return view
}

// RecentMatchView is one row of a player's recent-matches report.
type RecentMatchView struct {
	MatchID      string         `json:"matchId"`
	Time         string         `json:"time"`
	Map          string         `json:"map"`
	Mode         string         `json:"mode"`
	Duration     string         `json:"duration"`
	TotalPlayers int            `json:"totalPlayers"`
	Rank         int            `json:"rank"`
	IsCustom     bool           `json:"isCustom"`
	Stats        BriefStatsView `json:"stats"`
	Teammates    []TeammateView `json:"teammates"`
}

type BriefStatsView struct {
	Kills         int          `json:"kills"`
	Assists       int          `json:"assists"`
	DamageDealt   int          `json:"damageDealt"`
	DBNOs         int          `json:"dbnos"`
	HeadshotKills int          `json:"headshotKills"`
	Heals         int          `json:"heals"`
	Boosts        int          `json:"boosts"`
	KillPlace     int          `json:"killPlace"`
	LongestKill   int          `json:"longestKill"`
	Movement      MovementView `json:"movement"`
}

type TeammateView struct {
	Name     string         `json:"name"`
	Survival string         `json:"survival"`
	Stats    BriefStatsView `json:"stats"`
}

// RecentMatch reshapes one match and its resolved subject into a row view.
func RecentMatch(doc *domain.MatchDocument, subject *domain.Participant, teammates []domain.Participant) RecentMatchView {
	view := RecentMatchView{
		MatchID:      doc.MatchID,
		Time:         doc.CreatedAt.UTC().Format(time.RFC3339),
		Map:          MapName(doc.MapID),
		Mode:         GameMode(doc.GameMode),
		Duration:     FormatDuration(doc.DurationSeconds),
		TotalPlayers: len(doc.Participants),
		IsCustom:     doc.IsCustomMatch,
		Teammates:    []TeammateView{},
	}
	if subject == nil {
		return view
	}

	view.Rank = subject.Stats.WinPlace
	view.Stats = briefStats(subject.Stats)

	for _, tm := range teammates {
		view.Teammates = append(view.Teammates, TeammateView{
			Name:     tm.PlayerName,
			Survival: FormatDuration(int(tm.Stats.TimeSurvived)),
			Stats:    briefStats(tm.Stats),
		})
	}
	return view
}

func briefStats(s domain.BaseStats) BriefStatsView {
	return BriefStatsView{
		Kills:         s.Kills,
		Assists:       s.Assists,
		DamageDealt:   roundStat(s.DamageDealt),
		DBNOs:         s.DBNOs,
		HeadshotKills: s.HeadshotKills,
		Heals:         s.Heals,
		Boosts:        s.Boosts,
		KillPlace:     s.KillPlace,
		LongestKill:   roundStat(s.LongestKill),
		Movement: MovementView{
			Total:    roundStat(s.WalkDistance + s.RideDistance + s.SwimDistance),
			Vehicle:  roundStat(s.RideDistance),
			Walking:  roundStat(s.WalkDistance),
			Swimming: roundStat(s.SwimDistance),
		},
	}
}

func roundStat(f float64) int {
	if f < 0 {
		return 0
	}
	return int(f + 0.5)
}

// SeasonView is the per-mode season report.
type SeasonView struct {
	PlayerName string         `json:"playerName"`
	Platform   string         `json:"platform"`
	SeasonID   string         `json:"seasonId"`
	Overall    SeasonModeView `json:"overall"`
	Solo       SeasonModeView `json:"solo"`
	Duo        SeasonModeView `json:"duo"`
	Squad      SeasonModeView `json:"squad"`
}

type SeasonModeView struct {
	Matches int    `json:"matches"`
	Wins    int    `json:"wins"`
	Kills   int    `json:"kills"`
	Assists int    `json:"assists"`
	KD      string `json:"kd"`
	WinRate string `json:"winRate"`
}

// Season reshapes season stats into its view model.
func Season(stats *domain.SeasonStats) SeasonView {
	return SeasonView{
		PlayerName: stats.PlayerName,
		Platform:   string(stats.Platform),
		SeasonID:   stats.SeasonID,
		Overall:    seasonMode(stats.Overall()),
		Solo:       seasonMode(stats.Solo),
		Duo:        seasonMode(stats.Duo),
		Squad:      seasonMode(stats.Squad),
	}
}

func seasonMode(s domain.SeasonModeStats) SeasonModeView {
	return SeasonModeView{
		Matches: s.RoundsPlayed,
		Wins:    s.Wins,
		Kills:   s.Kills,
		Assists: s.Assists,
		KD:      s.KD(),
		WinRate: s.WinRate(),
	}
}
