package infrastructure

import (
	"fmt"

	"revobot/domain/events"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeArrivalRecorded:
		return "members.arrival.recorded"
	case events.EventTypeCondemnationRecorded:
		return "members.condemnation.recorded"
	case events.EventTypeArrivalReminderSent:
		return "reminders.arrival.sent"
	case events.EventTypeCondemnationReminderSent:
		return "reminders.condemnation.sent"
	default:
		return fmt.Sprintf("unknown.%s", event.Type())
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"members.arrival.recorded",
		"members.condemnation.recorded",
		"reminders.arrival.sent",
		"reminders.condemnation.sent",
	}
}
