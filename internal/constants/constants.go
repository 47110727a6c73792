package constants

import "time"

const (
	MatchCacheTTL     = 10 * time.Minute
	SeasonCacheTTL    = 1 * time.Hour
	TelemetryCacheTTL = 30 * time.Minute

	DefaultCooldown = 10 * time.Second
)

const (
	ExternalAPITimeout = 10 * time.Second
	// Telemetry payloads run to tens of megabytes; the fetch gets a wider
	// deadline than the JSON:API endpoints.
	TelemetryFetchTimeout = 30 * time.Second
	DatabaseTimeout       = 5 * time.Second
	RequestTimeout        = 60 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	KillRankingSize    = 5
	RecentMatchesLimit = 5
	MaxRecentMatches   = 50
)
