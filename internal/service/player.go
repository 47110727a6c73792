package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"pubg-tracker/internal/api"
	"pubg-tracker/internal/cache"
	"pubg-tracker/internal/constants"
	"pubg-tracker/internal/domain"
	"pubg-tracker/internal/match"
	"pubg-tracker/internal/render"
)

// recentFetchConcurrency bounds parallel match downloads so one recent-
// matches request cannot burn through the API rate limit on its own.
const recentFetchConcurrency = 4

// PlayerService serves the player-level reports: season stats and recent
// match history.
type PlayerService struct {
	pubg      *api.Client
	logger    zerolog.Logger
	seasonIDs *cache.TTL[domain.Platform, string]
}

func NewPlayerService(pubg *api.Client, logger zerolog.Logger) *PlayerService {
	return &PlayerService{
		pubg:      pubg,
		logger:    logger.With().Str("service", "player").Logger(),
		seasonIDs: cache.NewTTL[domain.Platform, string](constants.SeasonCacheTTL),
	}
}

// GetSeasonStats builds the current-season report for a player.
func (s *PlayerService) GetSeasonStats(ctx context.Context, playerName string, platform domain.Platform) (*render.SeasonView, error) {
	player, err := s.pubg.GetPlayer(ctx, playerName, platform)
	if err != nil {
		return nil, fmt.Errorf("resolve player %s: %w", playerName, err)
	}

	seasonID, err := s.currentSeason(ctx, platform)
	if err != nil {
		return nil, err
	}

	stats, err := s.pubg.GetPlayerSeasonStats(ctx, player.AccountID, seasonID, platform)
	if err != nil {
		return nil, fmt.Errorf("fetch season stats for %s: %w", player.Name, err)
	}
	stats.PlayerName = player.Name
	stats.Platform = platform

	view := render.Season(stats)
	return &view, nil
}

// GetRecentMatches builds brief reports for the player's most recent
// matches, downloading the documents concurrently.
func (s *PlayerService) GetRecentMatches(ctx context.Context, playerName string, platform domain.Platform, limit int) ([]render.RecentMatchView, error) {
	player, err := s.pubg.GetPlayer(ctx, playerName, platform)
	if err != nil {
		return nil, fmt.Errorf("resolve player %s: %w", playerName, err)
	}
	if len(player.MatchIDs) == 0 {
		return nil, ErrNoRecentMatches
	}

	if limit <= 0 {
		limit = constants.RecentMatchesLimit
	}
	if limit > constants.MaxRecentMatches {
		limit = constants.MaxRecentMatches
	}
	ids := player.MatchIDs
	if len(ids) > limit {
		ids = ids[:limit]
	}

	views := make([]render.RecentMatchView, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(recentFetchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			doc, err := s.pubg.GetMatch(gctx, id, platform)
			if err != nil {
				return fmt.Errorf("fetch match %s: %w", id, err)
			}
			views[i] = s.briefFor(doc, player.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *PlayerService) briefFor(doc *domain.MatchDocument, playerName string) render.RecentMatchView {
	subject, err := match.FindParticipant(doc, playerName)
	if err != nil {
		// Roster data can lag the match list; render what we have.
		s.logger.Debug().
			Str("match_id", doc.MatchID).
			Str("player", playerName).
			Msg("player absent from match document")
		return render.RecentMatch(doc, nil, nil)
	}
	teammates := match.TeammatesOf(doc, subject.ParticipantID)
	return render.RecentMatch(doc, subject, teammates)
}

func (s *PlayerService) currentSeason(ctx context.Context, platform domain.Platform) (string, error) {
	if id, ok := s.seasonIDs.Get(platform); ok {
		return id, nil
	}
	id, err := s.pubg.GetCurrentSeason(ctx, platform)
	if err != nil {
		return "", fmt.Errorf("resolve current season: %w", err)
	}
	s.seasonIDs.Set(platform, id)
	return id, nil
}
