package api

import (
	"encoding/json"
	"time"

	"pubg-tracker/internal/domain"
)

// PlayerInfo is the resolved account for a display name, with the match
// IDs the upstream currently associates with it (newest first).
type PlayerInfo struct {
	AccountID string
	Name      string
	ShardID   string
	MatchIDs  []string
}

// JSON:API wire shapes. Matches arrive as a data object plus a flat
// included array mixing participants, rosters and assets.

type ref struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type refList struct {
	Data []ref `json:"data"`
}

type playersResponse struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			Name    string `json:"name"`
			ShardID string `json:"shardId"`
		} `json:"attributes"`
		Relationships struct {
			Matches refList `json:"matches"`
		} `json:"relationships"`
	} `json:"data"`
}

type matchResponse struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			CreatedAt     time.Time `json:"createdAt"`
			Duration      int       `json:"duration"`
			GameMode      string    `json:"gameMode"`
			MapName       string    `json:"mapName"`
			IsCustomMatch bool      `json:"isCustomMatch"`
		} `json:"attributes"`
		Relationships struct {
			Assets  refList `json:"assets"`
			Rosters refList `json:"rosters"`
		} `json:"relationships"`
	} `json:"data"`
	Included []includedItem `json:"included"`
}

type includedItem struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	Attributes json.RawMessage `json:"attributes"`
	Relationships struct {
		Participants refList `json:"participants"`
	} `json:"relationships"`
}

type participantAttributes struct {
	Stats struct {
		Name            string  `json:"name"`
		PlayerID        string  `json:"playerId"`
		Kills           int     `json:"kills"`
		Assists         int     `json:"assists"`
		DamageDealt     float64 `json:"damageDealt"`
		HeadshotKills   int     `json:"headshotKills"`
		DBNOs           int     `json:"DBNOs"`
		TimeSurvived    float64 `json:"timeSurvived"`
		Boosts          int     `json:"boosts"`
		Heals           int     `json:"heals"`
		Revives         int     `json:"revives"`
		KillPlace       int     `json:"killPlace"`
		WinPlace        int     `json:"winPlace"`
		RoadKills       int     `json:"roadKills"`
		TeamKills       int     `json:"teamKills"`
		LongestKill     float64 `json:"longestKill"`
		WalkDistance    float64 `json:"walkDistance"`
		RideDistance    float64 `json:"rideDistance"`
		SwimDistance    float64 `json:"swimDistance"`
		WeaponsAcquired int     `json:"weaponsAcquired"`
		VehicleDestroys int     `json:"vehicleDestroys"`
	} `json:"stats"`
}

type rosterAttributes struct {
	Stats struct {
		Rank   int `json:"rank"`
		TeamID int `json:"teamId"`
	} `json:"stats"`
	// Yes, a string: the upstream serializes the won flag as "true"/"false".
	Won string `json:"won"`
}

type assetAttributes struct {
	URL  string `json:"URL"`
	Name string `json:"name"`
}

type seasonsResponse struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			IsCurrentSeason bool `json:"isCurrentSeason"`
			IsOffseason     bool `json:"isOffseason"`
		} `json:"attributes"`
	} `json:"data"`
}

type seasonStatsResponse struct {
	Data struct {
		Attributes struct {
			GameModeStats map[string]gameModeStats `json:"gameModeStats"`
		} `json:"attributes"`
	} `json:"data"`
}

type gameModeStats struct {
	RoundsPlayed int `json:"roundsPlayed"`
	Wins         int `json:"wins"`
	Kills        int `json:"kills"`
	Assists      int `json:"assists"`
}

func (g gameModeStats) toDomain() domain.SeasonModeStats {
	return domain.SeasonModeStats{
		RoundsPlayed: g.RoundsPlayed,
		Wins:         g.Wins,
		Kills:        g.Kills,
		Assists:      g.Assists,
	}
}

type samplesResponse struct {
	Data struct {
		Relationships struct {
			Matches refList `json:"matches"`
		} `json:"relationships"`
	} `json:"data"`
}
