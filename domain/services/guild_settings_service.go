package services

import (
	"context"
	"fmt"

	"revobot/domain/entities"
	"revobot/domain/interfaces"
)

// guildSettingsService implements the GuildSettingsService interface
type guildSettingsService struct {
	guildSettingsRepo interfaces.GuildSettingsRepository
}

// NewGuildSettingsService creates a new guild settings service
func NewGuildSettingsService(guildSettingsRepo interfaces.GuildSettingsRepository) interfaces.GuildSettingsService {
	return &guildSettingsService{
		guildSettingsRepo: guildSettingsRepo,
	}
}

// GetSettings returns the stored settings, or nil when the guild has never been configured
func (s *guildSettingsService) GetSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	settings, err := s.guildSettingsRepo.GetGuildSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	return settings, nil
}

// UpdateArrivalChannel updates the arrival reminder channel for a guild
func (s *guildSettingsService) UpdateArrivalChannel(ctx context.Context, guildID int64, channelID *int64) error {
	if err := s.guildSettingsRepo.UpdateArrivalChannel(ctx, guildID, normalizeID(channelID)); err != nil {
		return fmt.Errorf("failed to update arrival channel: %w", err)
	}

	return nil
}

// UpdateCondemnationChannel updates the condemnation reminder channel for a guild
func (s *guildSettingsService) UpdateCondemnationChannel(ctx context.Context, guildID int64, channelID *int64) error {
	if err := s.guildSettingsRepo.UpdateCondemnationChannel(ctx, guildID, normalizeID(channelID)); err != nil {
		return fmt.Errorf("failed to update condemnation channel: %w", err)
	}

	return nil
}

// UpdateNotifierRole updates the role pinged by reminders for a guild
func (s *guildSettingsService) UpdateNotifierRole(ctx context.Context, guildID int64, roleID *int64) error {
	if err := s.guildSettingsRepo.UpdateNotifierRole(ctx, guildID, normalizeID(roleID)); err != nil {
		return fmt.Errorf("failed to update notifier role: %w", err)
	}

	return nil
}

// normalizeID turns a non-positive snowflake into nil
func normalizeID(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	return id
}
