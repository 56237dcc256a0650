package interfaces

import (
	"context"
	"time"

	"revobot/domain/entities"
	"revobot/domain/events"
)

// GuildSettingsRepository defines the interface for per-guild configuration access
type GuildSettingsRepository interface {
	// GetGuildSettings returns the settings row, or nil when the guild was never configured
	GetGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)

	// UpdateArrivalChannel sets (or clears with nil) the arrival channel, creating the row if needed
	UpdateArrivalChannel(ctx context.Context, guildID int64, channelID *int64) error

	// UpdateCondemnationChannel sets (or clears with nil) the condemnation channel, creating the row if needed
	UpdateCondemnationChannel(ctx context.Context, guildID int64, channelID *int64) error

	// UpdateNotifierRole sets (or clears with nil) the notifier role, creating the row if needed
	UpdateNotifierRole(ctx context.Context, guildID int64, roleID *int64) error
}

// ArrivalRepository defines the interface for arrival event access
type ArrivalRepository interface {
	// Create inserts a new arrival in the repository's guild and sets its ID
	Create(ctx context.Context, arrival *entities.Arrival) error

	// GetByID retrieves an arrival, or nil if it does not exist
	GetByID(ctx context.Context, id int64) (*entities.Arrival, error)

	// GetDue returns unsent arrivals due as of asOf across all guilds with an arrival channel
	GetDue(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error)

	// GetDueInGuild is GetDue restricted to the repository's guild
	GetDueInGuild(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error)

	// MarkReminderSent flags the reminder as sent; returns false if it already was
	MarkReminderSent(ctx context.Context, id int64) (bool, error)
}

// CondemnationRepository defines the interface for condemnation event access
type CondemnationRepository interface {
	// Create inserts a new condemnation in the repository's guild and sets its ID
	Create(ctx context.Context, condemnation *entities.Condemnation) error

	// GetByID retrieves a condemnation, or nil if it does not exist
	GetByID(ctx context.Context, id int64) (*entities.Condemnation, error)

	// GetDue returns unsent condemnations due as of asOf across all guilds with a condemnation channel
	GetDue(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error)

	// GetDueInGuild is GetDue restricted to the repository's guild
	GetDueInGuild(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error)

	// MarkReminderSent flags the reminder as sent; returns false if it already was
	MarkReminderSent(ctx context.Context, id int64) (bool, error)

	// CountByDisplayName counts condemnations in the repository's guild whose
	// display name matches case-insensitively
	CountByDisplayName(ctx context.Context, displayName string) (int64, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher buffers events until the surrounding unit of work commits
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush publishes all buffered events; called after a successful commit
	Flush(ctx context.Context) error

	// Discard drops all buffered events; called after a rollback
	Discard()
}
