package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeasonModeStatsKD(t *testing.T) {
	tests := []struct {
		name  string
		stats SeasonModeStats
		want  string
	}{
		{"typical", SeasonModeStats{RoundsPlayed: 100, Wins: 10, Kills: 180}, "2.00"},
		{"no deaths reports kills", SeasonModeStats{RoundsPlayed: 3, Wins: 3, Kills: 12}, "12.00"},
		{"no rounds at all", SeasonModeStats{}, "0.00"},
		{"rounds but no kills", SeasonModeStats{RoundsPlayed: 10}, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stats.KD())
		})
	}
}

func TestSeasonModeStatsDeaths(t *testing.T) {
	assert.Equal(t, 90, SeasonModeStats{RoundsPlayed: 100, Wins: 10}.Deaths())
	// Malformed upstream data never goes negative.
	assert.Zero(t, SeasonModeStats{RoundsPlayed: 5, Wins: 9}.Deaths())
}

func TestSeasonModeStatsWinRate(t *testing.T) {
	assert.Equal(t, "10.00", SeasonModeStats{RoundsPlayed: 100, Wins: 10}.WinRate())
	assert.Equal(t, "0.00", SeasonModeStats{}.WinRate())
}

func TestSeasonStatsOverall(t *testing.T) {
	s := SeasonStats{
		Solo:  SeasonModeStats{RoundsPlayed: 10, Wins: 1, Kills: 20, Assists: 2},
		Duo:   SeasonModeStats{RoundsPlayed: 20, Wins: 2, Kills: 30, Assists: 4},
		Squad: SeasonModeStats{RoundsPlayed: 30, Wins: 3, Kills: 40, Assists: 6},
	}
	assert.Equal(t, SeasonModeStats{RoundsPlayed: 60, Wins: 6, Kills: 90, Assists: 12}, s.Overall())
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform("  Steam ")
	assert.NoError(t, err)
	assert.Equal(t, PlatformSteam, p)

	_, err = ParsePlatform("gameboy")
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}
