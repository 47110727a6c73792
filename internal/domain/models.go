package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownPlatform means a platform string matched no known shard.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform is the PUBG shard a match or player belongs to.
type Platform string

const (
	PlatformSteam  Platform = "steam"
	PlatformKakao  Platform = "kakao"
	PlatformPSN    Platform = "psn"
	PlatformXbox   Platform = "xbox"
	PlatformStadia Platform = "stadia"
)

// ParsePlatform validates a user-supplied platform string.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PlatformSteam, PlatformKakao, PlatformPSN, PlatformXbox, PlatformStadia:
		return p, nil
	}
	return "", fmt.Errorf("%w %q (valid: steam, kakao, psn, xbox, stadia)", ErrUnknownPlatform, s)
}

// MatchDocument is one match as returned by the upstream API, flattened out
// of its JSON:API envelope. It is fetched fresh per query and never mutated.
type MatchDocument struct {
	MatchID          string
	CreatedAt        time.Time
	MapID            string
	GameMode         string
	DurationSeconds  int
	IsCustomMatch    bool
	Participants     []Participant
	Rosters          []Roster
	TelemetryAssetID string
	TelemetryURL     string
}

type Participant struct {
	ParticipantID string
	PlayerName    string
	TeamID        string
	Stats         BaseStats
}

// BaseStats is the per-participant stat block the match document carries.
type BaseStats struct {
	Kills           int
	Assists         int
	DamageDealt     float64
	DamageReceived  float64
	HeadshotKills   int
	DBNOs           int
	TimeSurvived    float64
	Boosts          int
	Heals           int
	Revives         int
	KillPlace       int
	WinPlace        int
	RoadKills       int
	TeamKills       int
	LongestKill     float64
	WalkDistance    float64
	RideDistance    float64
	SwimDistance    float64
	WeaponsAcquired int
	VehicleDestroys int
}

type Roster struct {
	RosterID       string
	TeamID         string
	Rank           int
	Won            bool
	ParticipantIDs []string
}

// Movement is a distance breakdown in telemetry units. Total is always the
// sum of the three classes.
type Movement struct {
	Total    int `json:"total"`
	Vehicle  int `json:"vehicle"`
	Walking  int `json:"walking"`
	Swimming int `json:"swimming"`
}

// WeaponStat is one canonical weapon's tally for a single match.
type WeaponStat struct {
	Kills     int `json:"kills"`
	Headshots int `json:"headshots"`
	Damage    int `json:"damage"`
}

// AggregatedMatchStats is the final normalized per-player match record.
// Every numeric field is zero-valued when source data is absent; weapon
// entries with no kills and no damage are pruned before it is built.
type AggregatedMatchStats struct {
	MatchID    string   `json:"matchId"`
	PlayerName string   `json:"playerName"`
	Platform   Platform `json:"platform"`

	Kills           int `json:"kills"`
	Assists         int `json:"assists"`
	DBNOs           int `json:"dbnos"`
	HeadshotKills   int `json:"headshotKills"`
	Heals           int `json:"heals"`
	Boosts          int `json:"boosts"`
	Revives         int `json:"revives"`
	KillPlace       int `json:"killPlace"`
	WinPlace        int `json:"winPlace"`
	RoadKills       int `json:"roadKills"`
	TeamKills       int `json:"teamKills"`
	LongestKill     int `json:"longestKill"`
	WeaponsAcquired int `json:"weaponsAcquired"`
	VehicleDestroys int `json:"vehicleDestroys"`
	TimeSurvived    int `json:"timeSurvived"`

	DamageDealt int `json:"damageDealt"`
	DamageTaken int `json:"damageTaken"`

	Movement    Movement              `json:"movement"`
	WeaponStats map[string]WeaponStat `json:"weaponStats"`
	KillStreaks []int                 `json:"killStreaks"`

	// HasTelemetry records whether the replayed event log contributed to
	// this record or it was built from base stats alone.
	HasTelemetry bool `json:"hasTelemetry"`

	// GeneratedAt is an explicit marker kept apart from the stats; it is
	// the only field two aggregations of the same inputs may differ in.
	GeneratedAt time.Time `json:"generatedAt"`
}
