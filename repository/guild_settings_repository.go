package repository

import (
	"context"
	"errors"
	"fmt"

	"revobot/database"
	"revobot/domain/entities"

	"github.com/jackc/pgx/v5"
)

const guildSettingsColumns = `guild_id, arrival_channel_id, condemnation_channel_id, notifier_role_id`

// GuildSettingsRepository implements the GuildSettingsRepository interface
type GuildSettingsRepository struct {
	q Queryable
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

// NewGuildSettingsRepositoryWithTx creates a new guild settings repository with a transaction
func NewGuildSettingsRepositoryWithTx(tx Queryable) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: tx}
}

func scanGuildSettings(row pgx.Row) (*entities.GuildSettings, error) {
	var settings entities.GuildSettings
	err := row.Scan(
		&settings.GuildID,
		&settings.ArrivalChannelID,
		&settings.CondemnationChannelID,
		&settings.NotifierRoleID,
	)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetGuildSettings retrieves guild settings, returning nil when the guild has no row
func (r *GuildSettingsRepository) GetGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	query := `SELECT ` + guildSettingsColumns + ` FROM guild_settings WHERE guild_id = $1`

	settings, err := scanGuildSettings(r.q.QueryRow(ctx, query, guildID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings for guild %d: %w", guildID, err)
	}

	return settings, nil
}

// UpdateArrivalChannel sets the arrival channel, creating the row if needed
func (r *GuildSettingsRepository) UpdateArrivalChannel(ctx context.Context, guildID int64, channelID *int64) error {
	query := `
		INSERT INTO guild_settings (guild_id, arrival_channel_id)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE
		SET arrival_channel_id = EXCLUDED.arrival_channel_id,
		    updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, guildID, channelID); err != nil {
		return fmt.Errorf("failed to update arrival channel for guild %d: %w", guildID, err)
	}
	return nil
}

// UpdateCondemnationChannel sets the condemnation channel, creating the row if needed
func (r *GuildSettingsRepository) UpdateCondemnationChannel(ctx context.Context, guildID int64, channelID *int64) error {
	query := `
		INSERT INTO guild_settings (guild_id, condemnation_channel_id)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE
		SET condemnation_channel_id = EXCLUDED.condemnation_channel_id,
		    updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, guildID, channelID); err != nil {
		return fmt.Errorf("failed to update condemnation channel for guild %d: %w", guildID, err)
	}
	return nil
}

// UpdateNotifierRole sets the notifier role, creating the row if needed
func (r *GuildSettingsRepository) UpdateNotifierRole(ctx context.Context, guildID int64, roleID *int64) error {
	query := `
		INSERT INTO guild_settings (guild_id, notifier_role_id)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE
		SET notifier_role_id = EXCLUDED.notifier_role_id,
		    updated_at = NOW()
	`

	if _, err := r.q.Exec(ctx, query, guildID, roleID); err != nil {
		return fmt.Errorf("failed to update notifier role for guild %d: %w", guildID, err)
	}
	return nil
}
