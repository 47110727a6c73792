// Package repository persists chat-user to game-account bindings.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"pubg-tracker/internal/constants"
	"pubg-tracker/internal/domain"
)

// ErrBindingNotFound means the chat user has no stored binding.
var ErrBindingNotFound = errors.New("binding not found")

// Binding ties a chat user to a PUBG display name on a platform.
type Binding struct {
	ID         string
	UserID     string
	PlayerName string
	Platform   domain.Platform
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type BindingRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewBindingRepository(db *sql.DB, logger zerolog.Logger) *BindingRepository {
	return &BindingRepository{db: db, logger: logger}
}

// Upsert stores or replaces a user's binding.
func (r *BindingRepository) Upsert(ctx context.Context, userID, playerName string, platform domain.Platform) (*Binding, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO bindings (id, user_id, player_name, platform, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			player_name = excluded.player_name,
			platform    = excluded.platform,
			updated_at  = excluded.updated_at`,
		id, userID, playerName, string(platform), now, now)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to upsert binding")
		return nil, fmt.Errorf("failed to upsert binding: %w", err)
	}

	r.logger.Info().Str("user_id", userID).Str("player_name", playerName).Str("platform", string(platform)).Msg("binding saved")
	return r.Get(ctx, userID)
}

// Get returns a user's binding or ErrBindingNotFound.
func (r *BindingRepository) Get(ctx context.Context, userID string) (*Binding, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, player_name, platform, created_at, updated_at
		FROM bindings WHERE user_id = ?`, userID)

	var b Binding
	var platform string
	err := row.Scan(&b.ID, &b.UserID, &b.PlayerName, &platform, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBindingNotFound
	}
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get binding")
		return nil, fmt.Errorf("failed to get binding: %w", err)
	}
	b.Platform = domain.Platform(platform)
	return &b, nil
}

// Delete removes a user's binding; deleting a missing binding returns
// ErrBindingNotFound.
func (r *BindingRepository) Delete(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM bindings WHERE user_id = ?`, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to delete binding")
		return fmt.Errorf("failed to delete binding: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrBindingNotFound
	}
	r.logger.Info().Str("user_id", userID).Msg("binding deleted")
	return nil
}
