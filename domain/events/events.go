package events

import "time"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeArrivalRecorded          EventType = "arrival_recorded"
	EventTypeCondemnationRecorded     EventType = "condemnation_recorded"
	EventTypeArrivalReminderSent      EventType = "arrival_reminder_sent"
	EventTypeCondemnationReminderSent EventType = "condemnation_reminder_sent"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// ArrivalRecordedEvent is published when an arrival is registered
type ArrivalRecordedEvent struct {
	ArrivalID   int64     `json:"arrival_id"`
	GuildID     int64     `json:"guild_id"`
	DisplayName string    `json:"display_name"`
	EventDate   time.Time `json:"event_date"`
	Profile     string    `json:"profile"`
}

func (e ArrivalRecordedEvent) Type() EventType {
	return EventTypeArrivalRecorded
}

// CondemnationRecordedEvent is published when a condemnation is registered
type CondemnationRecordedEvent struct {
	CondemnationID int64     `json:"condemnation_id"`
	GuildID        int64     `json:"guild_id"`
	DisplayName    string    `json:"display_name"`
	EventDate      time.Time `json:"event_date"`
}

func (e CondemnationRecordedEvent) Type() EventType {
	return EventTypeCondemnationRecorded
}

// ArrivalReminderSentEvent is published once an arrival reminder has been delivered
type ArrivalReminderSentEvent struct {
	ArrivalID   int64     `json:"arrival_id"`
	GuildID     int64     `json:"guild_id"`
	ChannelID   int64     `json:"channel_id"`
	DisplayName string    `json:"display_name"`
	SentAt      time.Time `json:"sent_at"`
}

func (e ArrivalReminderSentEvent) Type() EventType {
	return EventTypeArrivalReminderSent
}

// CondemnationReminderSentEvent is published once a condemnation reminder has been delivered
type CondemnationReminderSentEvent struct {
	CondemnationID int64     `json:"condemnation_id"`
	GuildID        int64     `json:"guild_id"`
	ChannelID      int64     `json:"channel_id"`
	DisplayName    string    `json:"display_name"`
	SentAt         time.Time `json:"sent_at"`
}

func (e CondemnationReminderSentEvent) Type() EventType {
	return EventTypeCondemnationReminderSent
}
