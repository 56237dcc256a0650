package testhelpers

import (
	"context"
	"time"

	"revobot/domain/entities"
	"revobot/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) UpdateArrivalChannel(ctx context.Context, guildID int64, channelID *int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockGuildSettingsRepository) UpdateCondemnationChannel(ctx context.Context, guildID int64, channelID *int64) error {
	args := m.Called(ctx, guildID, channelID)
	return args.Error(0)
}

func (m *MockGuildSettingsRepository) UpdateNotifierRole(ctx context.Context, guildID int64, roleID *int64) error {
	args := m.Called(ctx, guildID, roleID)
	return args.Error(0)
}

// MockArrivalRepository is a mock implementation of ArrivalRepository
type MockArrivalRepository struct {
	mock.Mock
}

func (m *MockArrivalRepository) Create(ctx context.Context, arrival *entities.Arrival) error {
	args := m.Called(ctx, arrival)
	return args.Error(0)
}

func (m *MockArrivalRepository) GetByID(ctx context.Context, id int64) (*entities.Arrival, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Arrival), args.Error(1)
}

func (m *MockArrivalRepository) GetDue(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DueArrival), args.Error(1)
}

func (m *MockArrivalRepository) GetDueInGuild(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DueArrival), args.Error(1)
}

func (m *MockArrivalRepository) MarkReminderSent(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCondemnationRepository is a mock implementation of CondemnationRepository
type MockCondemnationRepository struct {
	mock.Mock
}

func (m *MockCondemnationRepository) Create(ctx context.Context, condemnation *entities.Condemnation) error {
	args := m.Called(ctx, condemnation)
	return args.Error(0)
}

func (m *MockCondemnationRepository) GetByID(ctx context.Context, id int64) (*entities.Condemnation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Condemnation), args.Error(1)
}

func (m *MockCondemnationRepository) GetDue(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DueCondemnation), args.Error(1)
}

func (m *MockCondemnationRepository) GetDueInGuild(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DueCondemnation), args.Error(1)
}

func (m *MockCondemnationRepository) MarkReminderSent(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCondemnationRepository) CountByDisplayName(ctx context.Context, displayName string) (int64, error) {
	args := m.Called(ctx, displayName)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
