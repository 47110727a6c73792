package domain

import "fmt"

// SeasonModeStats is one game mode's season totals for a player.
type SeasonModeStats struct {
	RoundsPlayed int
	Wins         int
	Kills        int
	Assists      int
}

// Deaths counts lost rounds; a won round does not count as a death.
func (s SeasonModeStats) Deaths() int {
	d := s.RoundsPlayed - s.Wins
	if d < 0 {
		return 0
	}
	return d
}

// KD is kills per death, formatted to two decimals. With zero deaths the
// kill count itself is reported.
func (s SeasonModeStats) KD() string {
	if deaths := s.Deaths(); deaths > 0 {
		return fmt.Sprintf("%.2f", float64(s.Kills)/float64(deaths))
	}
	if s.Kills > 0 {
		return fmt.Sprintf("%.2f", float64(s.Kills))
	}
	return "0.00"
}

// WinRate is the win percentage formatted to two decimals.
func (s SeasonModeStats) WinRate() string {
	if s.RoundsPlayed == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(s.Wins)/float64(s.RoundsPlayed)*100)
}

// SeasonStats is a player's current-season summary across the three squad
// sizes plus the rollup of all of them.
type SeasonStats struct {
	PlayerName string
	Platform   Platform
	SeasonID   string
	Solo       SeasonModeStats
	Duo        SeasonModeStats
	Squad      SeasonModeStats
}

// Overall sums the per-mode stats.
func (s SeasonStats) Overall() SeasonModeStats {
	return SeasonModeStats{
		RoundsPlayed: s.Solo.RoundsPlayed + s.Duo.RoundsPlayed + s.Squad.RoundsPlayed,
		Wins:         s.Solo.Wins + s.Duo.Wins + s.Squad.Wins,
		Kills:        s.Solo.Kills + s.Duo.Kills + s.Squad.Kills,
		Assists:      s.Solo.Assists + s.Duo.Assists + s.Squad.Assists,
	}
}
