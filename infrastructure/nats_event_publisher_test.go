package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"revobot/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedMessage struct {
	subject string
	data    []byte
	msgID   string
}

type fakeMessagePublisher struct {
	messages []publishedMessage
	err      error
}

func (f *fakeMessagePublisher) Publish(ctx context.Context, subject string, data []byte, msgID string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, publishedMessage{subject: subject, data: data, msgID: msgID})
	return nil
}

func TestNATSEventPublisher_PublishWrapsEventInEnvelope(t *testing.T) {
	t.Parallel()

	client := &fakeMessagePublisher{}
	publisher := NewNATSEventPublisher(client, NewEventSubjectMapper())
	publisher.newID = func() string { return "evt-1" }
	publisher.now = func() time.Time { return time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC) }

	err := publisher.Publish(events.ArrivalReminderSentEvent{
		ArrivalID:   5,
		GuildID:     42,
		ChannelID:   100,
		DisplayName: "Alice",
	})
	require.NoError(t, err)

	require.Len(t, client.messages, 1)
	msg := client.messages[0]
	assert.Equal(t, "reminders.arrival.sent", msg.subject)
	assert.Equal(t, "evt-1", msg.msgID)

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(msg.data, &envelope))
	assert.Equal(t, "evt-1", envelope.EventID)
	assert.Equal(t, string(events.EventTypeArrivalReminderSent), envelope.EventType)
	assert.Equal(t, "revobot", envelope.SourceService)

	var payload events.ArrivalReminderSentEvent
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, int64(5), payload.ArrivalID)
	assert.Equal(t, "Alice", payload.DisplayName)
}

func TestNATSEventPublisher_PublishError(t *testing.T) {
	t.Parallel()

	client := &fakeMessagePublisher{err: errors.New("nats: timeout")}
	publisher := NewNATSEventPublisher(client, NewEventSubjectMapper())

	err := publisher.Publish(events.CondemnationRecordedEvent{CondemnationID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event to NATS")
}

func TestEventSubjectMapper_CoversEveryEvent(t *testing.T) {
	t.Parallel()

	mapper := NewEventSubjectMapper()
	all := []events.Event{
		events.ArrivalRecordedEvent{},
		events.CondemnationRecordedEvent{},
		events.ArrivalReminderSentEvent{},
		events.CondemnationReminderSentEvent{},
	}

	subjects := mapper.GetAllSubjects()
	for _, event := range all {
		assert.Contains(t, subjects, mapper.MapEventToSubject(event), "event %s", event.Type())
	}
}
