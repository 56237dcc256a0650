package application

import (
	"context"
	"testing"

	"revobot/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	guildC            = int64(1001)
	arrivalChannel    = int64(2001)
	condemnChannel    = int64(2002)
	managerRole       = int64(3001)
	otherGuild        = int64(1002)
	otherGuildChannel = int64(2101)
)

func TestReminderDispatcher_ArrivalLifecycle(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.configure(guildC, int64Ptr(arrivalChannel), nil, int64Ptr(managerRole))
	aliceID := store.addArrival(guildC, "Alice", civil(2025, 1, 1))

	poster := newRecordingPoster()
	dispatcher := NewReminderDispatcher(&fakeUnitOfWorkFactory{store: store}, poster)
	ctx := context.Background()

	// Not due six days later
	report, err := dispatcher.Run(ctx, civil(2025, 1, 7))
	require.NoError(t, err)
	assert.Equal(t, 0, report.ArrivalsDue)
	assert.False(t, store.arrivalSent(aliceID))

	// Due on the seventh day
	report, err = dispatcher.Run(ctx, civil(2025, 1, 8))
	require.NoError(t, err)
	assert.Equal(t, 1, report.ArrivalsDue)
	assert.Equal(t, 1, report.ArrivalsSent)
	assert.Equal(t, 0, report.Failures)
	assert.True(t, store.arrivalSent(aliceID))

	require.Len(t, poster.arrivals, 1)
	sent := poster.arrivals[0]
	assert.Equal(t, "Alice", sent.DisplayName)
	assert.Equal(t, arrivalChannel, sent.ChannelID)
	assert.Equal(t, "PVM OPTI", sent.ProfileLabel)
	require.NotNil(t, sent.NotifierRoleID)
	assert.Equal(t, managerRole, *sent.NotifierRoleID)

	// Nothing left the day after
	report, err = dispatcher.Run(ctx, civil(2025, 1, 9))
	require.NoError(t, err)
	assert.Equal(t, 0, report.ArrivalsDue)
	assert.Len(t, poster.arrivals, 1)

	require.Len(t, store.published, 1)
	assert.Equal(t, events.EventTypeArrivalReminderSent, store.published[0].Type())
}

func TestReminderDispatcher_UnsetChannelIsNeverDispatched(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.configure(guildC, nil, int64Ptr(condemnChannel), nil)
	arrivalID := store.addArrival(guildC, "Alice", civil(2025, 1, 1))
	// A guild without any settings row
	strayID := store.addArrival(otherGuild, "Dave", civil(2025, 1, 1))

	poster := newRecordingPoster()
	dispatcher := NewReminderDispatcher(&fakeUnitOfWorkFactory{store: store}, poster)

	report, err := dispatcher.Run(context.Background(), civil(2025, 6, 1))
	require.NoError(t, err)

	assert.Equal(t, 0, report.ArrivalsDue)
	assert.Empty(t, poster.arrivals)
	assert.False(t, store.arrivalSent(arrivalID))
	assert.False(t, store.arrivalSent(strayID))
}

func TestReminderDispatcher_CondemnationRendersLabelAndAntecedents(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.configure(guildC, nil, int64Ptr(condemnChannel), nil)
	bobID := store.addCondemnation(guildC, "Bob", civil(2025, 2, 1), nil, stringPtr("Scout"))
	store.addCondemnation(guildC, "bob", civil(2024, 11, 3), nil, nil)

	poster := newRecordingPoster()
	dispatcher := NewReminderDispatcher(&fakeUnitOfWorkFactory{store: store}, poster)

	report, err := dispatcher.Run(context.Background(), civil(2025, 2, 8))
	require.NoError(t, err)

	// The older one was also due
	assert.Equal(t, 2, report.CondemnationsDue)
	assert.Equal(t, 2, report.CondemnationsSent)
	assert.True(t, store.condemnationSent(bobID))

	var found bool
	for _, reminder := range poster.condemnations {
		if reminder.CondemnationID != bobID {
			continue
		}
		found = true
		assert.Equal(t, "Scout", reminder.RestoreRole)
		assert.Equal(t, int64(2), reminder.Antecedents)
		assert.Equal(t, civil(2025, 2, 1), reminder.EventDate)
		assert.Nil(t, reminder.NotifierRoleID)
	}
	assert.True(t, found)
}

func TestReminderDispatcher_FailureIsIsolatedAndRetried(t *testing.T) {
	t.Parallel()

	store := newMemoryStore()
	store.configure(guildC, int64Ptr(arrivalChannel), nil, nil)
	store.configure(otherGuild, int64Ptr(otherGuildChannel), nil, nil)
	brokenID := store.addArrival(guildC, "Alice", civil(2025, 1, 1))
	healthyID := store.addArrival(otherGuild, "Eve", civil(2025, 1, 1))

	poster := newRecordingPoster()
	poster.failChannel(arrivalChannel, true)
	dispatcher := NewReminderDispatcher(&fakeUnitOfWorkFactory{store: store}, poster)
	ctx := context.Background()

	report, err := dispatcher.Run(ctx, civil(2025, 1, 8))
	require.NoError(t, err)
	assert.Equal(t, 2, report.ArrivalsDue)
	assert.Equal(t, 1, report.ArrivalsSent)
	assert.Equal(t, 1, report.Failures)
	assert.False(t, store.arrivalSent(brokenID))
	assert.True(t, store.arrivalSent(healthyID))

	// Still pending on the next cycle, and the healthy one is not resent
	poster.failChannel(arrivalChannel, false)
	report, err = dispatcher.Run(ctx, civil(2025, 1, 8))
	require.NoError(t, err)
	assert.Equal(t, 1, report.ArrivalsDue)
	assert.Equal(t, 1, report.ArrivalsSent)
	assert.True(t, store.arrivalSent(brokenID))

	require.Len(t, poster.arrivals, 2)
	assert.Equal(t, healthyID, poster.arrivals[0].ArrivalID)
	assert.Equal(t, brokenID, poster.arrivals[1].ArrivalID)
	assert.Equal(t, 2, store.markCalls)
}
