package application

import (
	"context"

	"revobot/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes buffered events
	Commit() error

	// Rollback rolls back the transaction and discards buffered events
	Rollback() error

	// Repository getters
	GuildSettingsRepository() interfaces.GuildSettingsRepository
	ArrivalRepository() interfaces.ArrivalRepository
	CondemnationRepository() interfaces.CondemnationRepository
	EventBus() interfaces.EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// CreateForGuild creates a new UnitOfWork instance scoped to a specific guild
	CreateForGuild(guildID int64) UnitOfWork

	// CreateGlobal creates a UnitOfWork for cross-guild queries such as the due scan
	CreateGlobal() UnitOfWork
}
