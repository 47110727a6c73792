package command

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"pubg-tracker/internal/config"
)

func newTestRouter(cooldownPeriod time.Duration) *Router {
	cfg := &config.Config{
		DefaultPlatform: "steam",
		CooldownPeriod:  cooldownPeriod,
	}
	// Handlers that reach the services are exercised at the service level;
	// these tests cover parsing, dispatch and the cooldown gate.
	return NewRouter(nil, nil, nil, cfg, zerolog.Nop())
}

func TestDispatchIgnoresNonCommands(t *testing.T) {
	r := newTestRouter(0)

	tests := []string{
		"",
		"   ",
		"hello there",
		"!pubgstats last",
		"pubg last",
	}
	for _, msg := range tests {
		reply, handled := r.Dispatch(context.Background(), Request{UserID: "u1", Message: msg})
		assert.False(t, handled, "message %q", msg)
		assert.Empty(t, reply)
	}
}

func TestDispatchBarePrefixShowsUsage(t *testing.T) {
	r := newTestRouter(0)
	reply, handled := r.Dispatch(context.Background(), Request{UserID: "u1", Message: "!pubg"})
	assert.True(t, handled)
	assert.Contains(t, reply, "Commands:")
}

func TestDispatchPrefixIsCaseInsensitive(t *testing.T) {
	r := newTestRouter(0)
	reply, handled := r.Dispatch(context.Background(), Request{UserID: "u1", Message: "!PUBG help"})
	assert.True(t, handled)
	assert.Contains(t, reply, "Commands:")
}

func TestDispatchUnknownCommand(t *testing.T) {
	r := newTestRouter(0)
	reply, handled := r.Dispatch(context.Background(), Request{UserID: "u1", Message: "!pubg frobnicate"})
	assert.True(t, handled)
	assert.Contains(t, reply, "Unknown command")
}

func TestDispatchMissingArgumentShowsCommandUsage(t *testing.T) {
	r := newTestRouter(0)
	reply, handled := r.Dispatch(context.Background(), Request{UserID: "u1", Message: "!pubg match"})
	assert.True(t, handled)
	assert.Contains(t, reply, "Usage: !pubg match")
}

func TestDispatchCooldownBlocksRepeatedLookups(t *testing.T) {
	r := newTestRouter(time.Minute)

	_, handled := r.Dispatch(context.Background(), Request{UserID: "u1", Message: "!pubg match"})
	assert.True(t, handled)

	reply, handled := r.Dispatch(context.Background(), Request{UserID: "u1", Message: "!pubg match"})
	assert.True(t, handled)
	assert.Contains(t, reply, "Slow down")

	// A different user is unaffected.
	reply, _ = r.Dispatch(context.Background(), Request{UserID: "u2", Message: "!pubg match"})
	assert.NotContains(t, reply, "Slow down")
}

func TestDispatchHelpIsExemptFromCooldown(t *testing.T) {
	r := newTestRouter(time.Minute)
	r.Dispatch(context.Background(), Request{UserID: "u1", Message: "!pubg match"})

	reply, handled := r.Dispatch(context.Background(), Request{UserID: "u1", Message: "!pubg help"})
	assert.True(t, handled)
	assert.Contains(t, reply, "Commands:")
}

func TestDispatchInvalidPlatformArgument(t *testing.T) {
	r := newTestRouter(0)
	reply, handled := r.Dispatch(context.Background(), Request{UserID: "u1", Message: "!pubg match some-id gameboy"})
	assert.True(t, handled)
	assert.Contains(t, reply, "Unknown platform")
}
