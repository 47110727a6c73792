// Package server exposes the tracker over JSON HTTP. Routes are read-only
// stat lookups plus a command endpoint that relays chat-frontend messages
// through the command router.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"pubg-tracker/internal/api"
	"pubg-tracker/internal/command"
	"pubg-tracker/internal/config"
	"pubg-tracker/internal/domain"
	"pubg-tracker/internal/match"
	"pubg-tracker/internal/repository"
	"pubg-tracker/internal/service"
)

type TrackerServer struct {
	matches *service.MatchStatsService
	players *service.PlayerService
	router  *command.Router
	pubg    *api.Client
	cfg     *config.Config
	logger  zerolog.Logger
}

func NewTrackerServer(
	matches *service.MatchStatsService,
	players *service.PlayerService,
	router *command.Router,
	pubg *api.Client,
	cfg *config.Config,
	logger zerolog.Logger,
) *TrackerServer {
	return &TrackerServer{
		matches: matches,
		players: players,
		router:  router,
		pubg:    pubg,
		cfg:     cfg,
		logger:  logger.With().Str("component", "http").Logger(),
	}
}

// Register mounts all routes on the mux.
func (s *TrackerServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/players/{name}/matches/latest/stats", s.handleLatestMatchStats)
	mux.HandleFunc("GET /api/players/{name}/matches/recent", s.handleRecentMatches)
	mux.HandleFunc("GET /api/players/{name}/season", s.handleSeasonStats)
	mux.HandleFunc("GET /api/matches/{id}/players/{name}/stats", s.handleMatchStats)
	mux.HandleFunc("GET /api/matches/{id}/summary", s.handleMatchSummary)
	mux.HandleFunc("GET /api/samples", s.handleSamples)
	mux.HandleFunc("POST /api/commands", s.handleCommand)
	mux.HandleFunc("GET /healthz", s.handleHealth)
}

func (s *TrackerServer) handleLatestMatchStats(w http.ResponseWriter, r *http.Request) {
	platform, ok := s.platformParam(w, r)
	if !ok {
		return
	}
	view, err := s.matches.GetLatestMatchStats(r.Context(), r.PathValue("name"), platform)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *TrackerServer) handleMatchStats(w http.ResponseWriter, r *http.Request) {
	platform, ok := s.platformParam(w, r)
	if !ok {
		return
	}
	view, err := s.matches.GetMatchStats(r.Context(), r.PathValue("id"), platform, r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *TrackerServer) handleMatchSummary(w http.ResponseWriter, r *http.Request) {
	platform, ok := s.platformParam(w, r)
	if !ok {
		return
	}
	view, err := s.matches.GetMatchSummary(r.Context(), r.PathValue("id"), platform)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *TrackerServer) handleRecentMatches(w http.ResponseWriter, r *http.Request) {
	platform, ok := s.platformParam(w, r)
	if !ok {
		return
	}
	views, err := s.players.GetRecentMatches(r.Context(), r.PathValue("name"), platform, 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *TrackerServer) handleSeasonStats(w http.ResponseWriter, r *http.Request) {
	platform, ok := s.platformParam(w, r)
	if !ok {
		return
	}
	view, err := s.players.GetSeasonStats(r.Context(), r.PathValue("name"), platform)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

type commandRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type commandResponse struct {
	Handled bool   `json:"handled"`
	Reply   string `json:"reply,omitempty"`
}

func (s *TrackerServer) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.UserID == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId is required"})
		return
	}

	reply, handled := s.router.Dispatch(r.Context(), command.Request{
		UserID:  req.UserID,
		Message: req.Message,
	})
	s.writeJSON(w, http.StatusOK, commandResponse{Handled: handled, Reply: reply})
}

// handleSamples exposes the shard's sampled match IDs, useful for poking
// at arbitrary matches without knowing a player.
func (s *TrackerServer) handleSamples(w http.ResponseWriter, r *http.Request) {
	platform, ok := s.platformParam(w, r)
	if !ok {
		return
	}
	ids, err := s.pubg.GetSamples(r.Context(), platform)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"matchIds": ids})
}

func (s *TrackerServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	info := s.pubg.GetRateLimitInfo()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":             "ok",
		"rateLimitRemaining": info.Remaining,
		"rateLimitLimit":     info.Limit,
	})
}

// platformParam reads the optional ?platform= query, falling back to the
// configured default. Writes a 400 and returns false on an unknown value.
func (s *TrackerServer) platformParam(w http.ResponseWriter, r *http.Request) (domain.Platform, bool) {
	raw := r.URL.Query().Get("platform")
	if raw == "" {
		return s.cfg.DefaultPlatform, true
	}
	platform, err := domain.ParsePlatform(raw)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return "", false
	}
	return platform, true
}

func (s *TrackerServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *TrackerServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, api.ErrPlayerNotFound),
		errors.Is(err, api.ErrMatchNotFound),
		errors.Is(err, match.ErrPlayerNotInMatch),
		errors.Is(err, service.ErrNoRecentMatches),
		errors.Is(err, repository.ErrBindingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownPlatform):
		status = http.StatusBadRequest
	}

	if status == http.StatusBadGateway {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("upstream request failed")
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
