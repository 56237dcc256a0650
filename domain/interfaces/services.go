package interfaces

import (
	"context"
	"time"

	"revobot/domain/entities"
)

// GuildSettingsService defines the interface for guild configuration
type GuildSettingsService interface {
	// GetSettings returns the guild's settings, or nil if none were ever saved
	GetSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)

	// UpdateArrivalChannel updates the arrival reminder channel (nil disables)
	UpdateArrivalChannel(ctx context.Context, guildID int64, channelID *int64) error

	// UpdateCondemnationChannel updates the condemnation reminder channel (nil disables)
	UpdateCondemnationChannel(ctx context.Context, guildID int64, channelID *int64) error

	// UpdateNotifierRole updates the role pinged by reminders (nil disables the ping)
	UpdateNotifierRole(ctx context.Context, guildID int64, roleID *int64) error
}

// RegistrationService defines the interface for recording member events
type RegistrationService interface {
	// RecordArrival registers an arrival for the guild
	RecordArrival(ctx context.Context, guildID int64, displayName string, eventDate time.Time, profile entities.ArrivalProfile) (*entities.Arrival, error)

	// RecordCondemnation registers a condemnation for the guild
	RecordCondemnation(ctx context.Context, guildID int64, displayName string, eventDate time.Time, restoreRoleID *int64, restoreRoleLabel *string) (*entities.Condemnation, error)

	// CountCondemnations returns how many condemnations the display name has
	CountCondemnations(ctx context.Context, displayName string) (int64, error)
}

// DueSummary groups the due-but-unsent reminders of one guild
type DueSummary struct {
	AsOf          time.Time
	Arrivals      []*entities.DueArrival
	Condemnations []*entities.DueCondemnation
}

// Total returns the number of due reminders
func (s *DueSummary) Total() int {
	return len(s.Arrivals) + len(s.Condemnations)
}

// ReminderService defines the interface for selecting and completing due reminders
type ReminderService interface {
	// DueArrivals returns due arrival reminders across all guilds
	DueArrivals(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error)

	// DueCondemnations returns due condemnation reminders across all guilds
	DueCondemnations(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error)

	// DueInGuild returns the due reminders of the repositories' guild
	DueInGuild(ctx context.Context, asOf time.Time) (*DueSummary, error)

	// Antecedents returns the total condemnation count for a display name
	Antecedents(ctx context.Context, displayName string) (int64, error)

	// CompleteArrival marks a delivered arrival reminder as sent
	CompleteArrival(ctx context.Context, item *entities.DueArrival, sentAt time.Time) error

	// CompleteCondemnation marks a delivered condemnation reminder as sent
	CompleteCondemnation(ctx context.Context, item *entities.DueCondemnation, sentAt time.Time) error
}
