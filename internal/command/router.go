// Package command implements the chat-facing command layer. It is
// transport-agnostic: any frontend that can hand over a user ID and a
// message line can dispatch through the router and relay the text reply.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"pubg-tracker/internal/api"
	"pubg-tracker/internal/config"
	"pubg-tracker/internal/cooldown"
	"pubg-tracker/internal/domain"
	"pubg-tracker/internal/match"
	"pubg-tracker/internal/repository"
	"pubg-tracker/internal/service"
)

// Prefix starts every command line the router reacts to.
const Prefix = "!pubg"

// Request is one inbound chat message.
type Request struct {
	UserID  string
	Message string
}

type handlerFunc func(ctx context.Context, req Request, args []string) (string, error)

// Router parses command lines, resolves the target player (explicit
// argument or stored binding) and dispatches to the services.
type Router struct {
	matches  *service.MatchStatsService
	players  *service.PlayerService
	bindings *repository.BindingRepository
	gate     *cooldown.Gate
	cfg      *config.Config
	logger   zerolog.Logger

	handlers map[string]handlerFunc
}

func NewRouter(
	matches *service.MatchStatsService,
	players *service.PlayerService,
	bindings *repository.BindingRepository,
	cfg *config.Config,
	logger zerolog.Logger,
) *Router {
	r := &Router{
		matches:  matches,
		players:  players,
		bindings: bindings,
		gate:     cooldown.NewGate(cfg.CooldownPeriod),
		cfg:      cfg,
		logger:   logger.With().Str("component", "command").Logger(),
	}
	r.handlers = map[string]handlerFunc{
		"bind":   r.handleBind,
		"unbind": r.handleUnbind,
		"whoami": r.handleWhoami,
		"last":   r.handleLast,
		"match":  r.handleMatch,
		"season": r.handleSeason,
		"recent": r.handleRecent,
		"help":   r.handleHelp,
	}
	return r
}

// Dispatch handles one message. The bool reports whether the message was a
// command at all; non-commands are silently ignored by the frontend.
func (r *Router) Dispatch(ctx context.Context, req Request) (string, bool) {
	fields := strings.Fields(req.Message)
	if len(fields) == 0 || !strings.EqualFold(fields[0], Prefix) {
		return "", false
	}
	if len(fields) == 1 {
		return r.usage(), true
	}

	name := strings.ToLower(fields[1])
	handler, ok := r.handlers[name]
	if !ok {
		return fmt.Sprintf("Unknown command %q. %s", name, r.usage()), true
	}

	// Binding management stays exempt so a user on cooldown can still fix
	// a bad binding.
	if name != "bind" && name != "unbind" && name != "whoami" && name != "help" {
		if ok, remaining := r.gate.Check(req.UserID); !ok {
			return fmt.Sprintf("Slow down, try again in %ds.", int(remaining.Seconds())), true
		}
	}

	reply, err := handler(ctx, req, fields[2:])
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("command", name).
			Str("user_id", req.UserID).
			Msg("command failed")
		return r.errorReply(err), true
	}
	return reply, true
}

func (r *Router) handleBind(ctx context.Context, req Request, args []string) (string, error) {
	if len(args) == 0 {
		return "Usage: !pubg bind <player> [platform]", nil
	}
	platform, err := r.platformArg(args, 1)
	if err != nil {
		return "", err
	}
	binding, err := r.bindings.Upsert(ctx, req.UserID, args[0], platform)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Bound to %s on %s.", binding.PlayerName, binding.Platform), nil
}

func (r *Router) handleUnbind(ctx context.Context, req Request, _ []string) (string, error) {
	err := r.bindings.Delete(ctx, req.UserID)
	if errors.Is(err, repository.ErrBindingNotFound) {
		return "You have no binding.", nil
	}
	if err != nil {
		return "", err
	}
	return "Binding removed.", nil
}

func (r *Router) handleWhoami(ctx context.Context, req Request, _ []string) (string, error) {
	binding, err := r.bindings.Get(ctx, req.UserID)
	if errors.Is(err, repository.ErrBindingNotFound) {
		return "You have no binding. Use !pubg bind <player> [platform].", nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("You are bound to %s on %s.", binding.PlayerName, binding.Platform), nil
}

func (r *Router) handleLast(ctx context.Context, req Request, args []string) (string, error) {
	name, platform, err := r.resolveTarget(ctx, req, args)
	if err != nil {
		return "", err
	}
	view, err := r.matches.GetLatestMatchStats(ctx, name, platform)
	if err != nil {
		return "", err
	}
	return formatMatchDetails(view), nil
}

func (r *Router) handleMatch(ctx context.Context, req Request, args []string) (string, error) {
	if len(args) == 0 {
		return "Usage: !pubg match <match-id> [platform]", nil
	}
	platform, err := r.platformArg(args, 1)
	if err != nil {
		return "", err
	}
	view, err := r.matches.GetMatchSummary(ctx, args[0], platform)
	if err != nil {
		return "", err
	}
	return formatMatchSummary(view), nil
}

func (r *Router) handleSeason(ctx context.Context, req Request, args []string) (string, error) {
	name, platform, err := r.resolveTarget(ctx, req, args)
	if err != nil {
		return "", err
	}
	view, err := r.players.GetSeasonStats(ctx, name, platform)
	if err != nil {
		return "", err
	}
	return formatSeason(view), nil
}

func (r *Router) handleRecent(ctx context.Context, req Request, args []string) (string, error) {
	name, platform, err := r.resolveTarget(ctx, req, args)
	if err != nil {
		return "", err
	}
	views, err := r.players.GetRecentMatches(ctx, name, platform, 0)
	if err != nil {
		return "", err
	}
	return formatRecentMatches(name, views), nil
}

func (r *Router) handleHelp(context.Context, Request, []string) (string, error) {
	return r.usage(), nil
}

// resolveTarget picks the subject player: an explicit name argument wins,
// otherwise the caller's stored binding.
func (r *Router) resolveTarget(ctx context.Context, req Request, args []string) (string, domain.Platform, error) {
	if len(args) > 0 {
		platform, err := r.platformArg(args, 1)
		if err != nil {
			return "", "", err
		}
		return args[0], platform, nil
	}

	binding, err := r.bindings.Get(ctx, req.UserID)
	if err != nil {
		return "", "", err
	}
	return binding.PlayerName, binding.Platform, nil
}

func (r *Router) platformArg(args []string, idx int) (domain.Platform, error) {
	if len(args) <= idx {
		return r.cfg.DefaultPlatform, nil
	}
	return domain.ParsePlatform(args[idx])
}

func (r *Router) usage() string {
	return "Commands: !pubg last|season|recent [player] [platform], " +
		"!pubg match <match-id> [platform], " +
		"!pubg bind <player> [platform], !pubg unbind, !pubg whoami"
}

// errorReply maps the error taxonomy onto user-facing messages without
// leaking transport detail.
func (r *Router) errorReply(err error) string {
	switch {
	case errors.Is(err, repository.ErrBindingNotFound):
		return "You have no binding. Use !pubg bind <player> [platform], or name a player."
	case errors.Is(err, api.ErrPlayerNotFound):
		return "Player not found on that platform."
	case errors.Is(err, api.ErrMatchNotFound):
		return "Match not found."
	case errors.Is(err, match.ErrPlayerNotInMatch):
		return "That player did not take part in this match."
	case errors.Is(err, service.ErrNoRecentMatches):
		return "No recent matches on record."
	case errors.Is(err, domain.ErrUnknownPlatform):
		return "Unknown platform. Use steam, kakao, psn, xbox or stadia."
	default:
		return "Something went wrong fetching stats, try again later."
	}
}
