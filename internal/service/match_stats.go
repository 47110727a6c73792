// Package service orchestrates the API client, telemetry replay and
// aggregation into the operations the command and HTTP layers expose.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"pubg-tracker/internal/api"
	"pubg-tracker/internal/constants"
	"pubg-tracker/internal/domain"
	"pubg-tracker/internal/match"
	"pubg-tracker/internal/render"
	"pubg-tracker/internal/telemetry"
)

// ErrNoRecentMatches means the player exists but has no matches on record.
var ErrNoRecentMatches = errors.New("no recent matches")

// MatchStatsService runs the match pipeline: fetch document, resolve the
// participant, replay telemetry and aggregate into a view model.
type MatchStatsService struct {
	pubg   *api.Client
	logger zerolog.Logger
}

func NewMatchStatsService(pubg *api.Client, logger zerolog.Logger) *MatchStatsService {
	return &MatchStatsService{
		pubg:   pubg,
		logger: logger.With().Str("service", "match_stats").Logger(),
	}
}

// GetMatchStats builds the detailed per-player report for one match. When
// the telemetry asset is missing the report is built from base stats alone;
// a failed telemetry download is an error.
func (s *MatchStatsService) GetMatchStats(ctx context.Context, matchID string, platform domain.Platform, playerName string) (*render.MatchDetailsView, error) {
	doc, err := s.pubg.GetMatch(ctx, matchID, platform)
	if err != nil {
		return nil, fmt.Errorf("fetch match %s: %w", matchID, err)
	}

	participant, err := match.FindParticipant(doc, playerName)
	if err != nil {
		return nil, err
	}

	replayed, err := s.replayFor(ctx, doc, participant.PlayerName)
	if err != nil {
		return nil, err
	}

	agg := match.Aggregate(doc, participant, replayed)
	agg.Platform = platform

	view := render.MatchDetails(doc, &agg, participant.PlayerName, platform)
	return &view, nil
}

// GetLatestMatchStats resolves the player's most recent match and builds
// its report.
func (s *MatchStatsService) GetLatestMatchStats(ctx context.Context, playerName string, platform domain.Platform) (*render.MatchDetailsView, error) {
	player, err := s.pubg.GetPlayer(ctx, playerName, platform)
	if err != nil {
		return nil, fmt.Errorf("resolve player %s: %w", playerName, err)
	}
	if len(player.MatchIDs) == 0 {
		return nil, ErrNoRecentMatches
	}
	return s.GetMatchStats(ctx, player.MatchIDs[0], platform, player.Name)
}

// GetMatchSummary builds the match-wide report: winner and kill ranking.
func (s *MatchStatsService) GetMatchSummary(ctx context.Context, matchID string, platform domain.Platform) (*render.MatchSummaryView, error) {
	doc, err := s.pubg.GetMatch(ctx, matchID, platform)
	if err != nil {
		return nil, fmt.Errorf("fetch match %s: %w", matchID, err)
	}

	var winner *match.WinningTeam
	if team, ok := match.Winner(doc); ok {
		winner = &team
	}
	ranking := match.KillRanking(doc, constants.KillRankingSize)

	view := render.MatchSummary(doc, winner, ranking)
	return &view, nil
}

// replayFor returns the replayed telemetry stats for one participant, or
// nil when the match carries no telemetry asset.
func (s *MatchStatsService) replayFor(ctx context.Context, doc *domain.MatchDocument, playerName string) (*telemetry.PlayerStats, error) {
	tctx, cancel := context.WithTimeout(ctx, constants.TelemetryFetchTimeout)
	defer cancel()

	events, err := s.pubg.GetTelemetry(tctx, doc)
	if err != nil {
		if errors.Is(err, api.ErrTelemetryUnavailable) {
			s.logger.Warn().
				Str("match_id", doc.MatchID).
				Msg("no telemetry asset, degrading to base stats")
			return nil, nil
		}
		return nil, fmt.Errorf("fetch telemetry for %s: %w", doc.MatchID, err)
	}

	replayed := telemetry.Replay(events, playerName)
	return &replayed, nil
}
