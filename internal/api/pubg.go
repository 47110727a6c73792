// Package api is the PUBG API client. It speaks the upstream JSON:API
// dialect, resolves telemetry assets, and shields the rest of the tracker
// from wire shapes.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"pubg-tracker/internal/cache"
	"pubg-tracker/internal/config"
	"pubg-tracker/internal/constants"
	"pubg-tracker/internal/domain"
	"pubg-tracker/internal/telemetry"
)

const baseURL = "https://api.pubg.com"

var (
	// ErrMatchNotFound means the upstream has no record for the match ID.
	ErrMatchNotFound = errors.New("match not found")
	// ErrPlayerNotFound means the name filter matched no account.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrTelemetryUnavailable means the match document references no
	// telemetry asset. Common for old matches; callers degrade to base
	// stats rather than fail.
	ErrTelemetryUnavailable = errors.New("telemetry unavailable")

	errNotFound = errors.New("not found")
)

type Client struct {
	apiKey      string
	client      *fasthttp.Client
	logger      zerolog.Logger
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo

	matchCache     *cache.TTL[string, *domain.MatchDocument]
	telemetryCache *cache.TTL[string, []telemetry.Event]
}

// RateLimitInfo mirrors the upstream X-Ratelimit-* headers. The client
// records them for observability; throttling policy stays with callers.
type RateLimitInfo struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		apiKey: cfg.PUBGAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         35 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
			MaxResponseBodySize: 256 << 20, // telemetry payloads are large
		},
		logger:         logger,
		rateLimit:      RateLimitInfo{Limit: 10, Remaining: 10, UpdatedAt: time.Now()},
		matchCache: cache.NewTTL[string, *domain.MatchDocument](cfg.CacheTTL),
		// Telemetry is immutable once written, so its cache outlives the
		// configurable response TTL.
		telemetryCache: cache.NewTTL[string, []telemetry.Event](constants.TelemetryCacheTTL),
	}
}

func (c *Client) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-Ratelimit-Limit")); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			c.rateLimit.Limit = val
		}
	}
	if remaining := string(resp.Header.Peek("X-Ratelimit-Remaining")); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimit.Remaining = val
		}
	}
	if reset := string(resp.Header.Peek("X-Ratelimit-Reset")); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			c.rateLimit.ResetAt = time.Unix(val, 0)
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// GetPlayer resolves a display name to an account via the name filter.
func (c *Client) GetPlayer(ctx context.Context, name string, platform domain.Platform) (*PlayerInfo, error) {
	u := fmt.Sprintf("%s/shards/%s/players?filter[playerNames]=%s", baseURL, platform, url.QueryEscape(name))
	resp, err := doRequest[playersResponse](ctx, c, u)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("fetch player %q: %w", name, err)
	}
	if len(resp.Data) == 0 {
		return nil, ErrPlayerNotFound
	}

	info := &PlayerInfo{
		AccountID: resp.Data[0].ID,
		Name:      resp.Data[0].Attributes.Name,
		ShardID:   resp.Data[0].Attributes.ShardID,
	}
	for _, ref := range resp.Data[0].Relationships.Matches.Data {
		info.MatchIDs = append(info.MatchIDs, ref.ID)
	}
	return info, nil
}

// GetMatch fetches and flattens one match document.
func (c *Client) GetMatch(ctx context.Context, matchID string, platform domain.Platform) (*domain.MatchDocument, error) {
	cacheKey := string(platform) + "/" + matchID
	if doc, ok := c.matchCache.Get(cacheKey); ok {
		c.logger.Debug().Str("match_id", matchID).Msg("match cache hit")
		return doc, nil
	}

	u := fmt.Sprintf("%s/shards/%s/matches/%s", baseURL, platform, matchID)
	resp, err := doRequest[matchResponse](ctx, c, u)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("fetch match %s: %w", matchID, err)
	}

	doc := resp.toDomain()
	c.matchCache.Set(cacheKey, doc)
	return doc, nil
}

// GetTelemetry downloads and parses the telemetry event log referenced by a
// match document. Fails with ErrTelemetryUnavailable when the document
// carries no asset.
func (c *Client) GetTelemetry(ctx context.Context, doc *domain.MatchDocument) ([]telemetry.Event, error) {
	if doc.TelemetryURL == "" {
		return nil, ErrTelemetryUnavailable
	}
	if events, ok := c.telemetryCache.Get(doc.TelemetryURL); ok {
		c.logger.Debug().Str("match_id", doc.MatchID).Msg("telemetry cache hit")
		return events, nil
	}

	body, err := c.fetchRaw(ctx, doc.TelemetryURL)
	if err != nil {
		return nil, fmt.Errorf("fetch telemetry for match %s: %w", doc.MatchID, err)
	}

	events, skipped, err := telemetry.ParseEvents(body)
	if err != nil {
		return nil, fmt.Errorf("parse telemetry for match %s: %w", doc.MatchID, err)
	}
	if skipped > 0 {
		c.logger.Warn().Str("match_id", doc.MatchID).Int("skipped", skipped).Msg("skipped malformed telemetry events")
	}
	c.logger.Debug().Str("match_id", doc.MatchID).Int("events", len(events)).Msg("telemetry parsed")

	c.telemetryCache.Set(doc.TelemetryURL, events)
	return events, nil
}

// GetCurrentSeason finds the season flagged current for a shard.
func (c *Client) GetCurrentSeason(ctx context.Context, platform domain.Platform) (string, error) {
	u := fmt.Sprintf("%s/shards/%s/seasons", baseURL, platform)
	resp, err := doRequest[seasonsResponse](ctx, c, u)
	if err != nil {
		return "", fmt.Errorf("fetch seasons: %w", err)
	}
	for _, season := range resp.Data {
		if season.Attributes.IsCurrentSeason {
			return season.ID, nil
		}
	}
	return "", fmt.Errorf("no current season for shard %s", platform)
}

// GetPlayerSeasonStats fetches a player's per-mode season totals.
func (c *Client) GetPlayerSeasonStats(ctx context.Context, accountID, seasonID string, platform domain.Platform) (*domain.SeasonStats, error) {
	u := fmt.Sprintf("%s/shards/%s/players/%s/seasons/%s", baseURL, platform, accountID, seasonID)
	resp, err := doRequest[seasonStatsResponse](ctx, c, u)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("fetch season stats: %w", err)
	}

	modes := resp.Data.Attributes.GameModeStats
	return &domain.SeasonStats{
		Platform: platform,
		SeasonID: seasonID,
		Solo:     modes["solo"].toDomain(),
		Duo:      modes["duo"].toDomain(),
		Squad:    modes["squad"].toDomain(),
	}, nil
}

// GetSamples returns a shard's recently sampled match IDs.
func (c *Client) GetSamples(ctx context.Context, platform domain.Platform) ([]string, error) {
	u := fmt.Sprintf("%s/shards/%s/samples", baseURL, platform)
	resp, err := doRequest[samplesResponse](ctx, c, u)
	if err != nil {
		return nil, fmt.Errorf("fetch samples: %w", err)
	}

	refs := resp.Data.Relationships.Matches.Data
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids, nil
}

func doRequest[T any](ctx context.Context, c *Client, url string) (*T, error) {
	body, err := c.fetchRaw(ctx, url)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

func (c *Client) fetchRaw(ctx context.Context, url string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/vnd.api+json")
	req.Header.Set("Accept-Encoding", "gzip")

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(constants.ExternalAPITimeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, err
	}

	c.updateRateLimit(resp)

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusNotFound:
		return nil, errNotFound
	default:
		return nil, fmt.Errorf("API error: %d", resp.StatusCode())
	}

	if string(resp.Header.ContentEncoding()) == "gzip" {
		body, err := resp.BodyGunzip()
		if err != nil {
			return nil, fmt.Errorf("gunzip response: %w", err)
		}
		return body, nil
	}
	// Copy out: the response buffer is recycled on release.
	return append([]byte(nil), resp.Body()...), nil
}
