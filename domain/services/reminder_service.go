package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"revobot/domain/entities"
	"revobot/domain/events"
	"revobot/domain/interfaces"
)

// reminderService selects due reminders and records their delivery
type reminderService struct {
	arrivalRepo      interfaces.ArrivalRepository
	condemnationRepo interfaces.CondemnationRepository
	eventPublisher   interfaces.EventPublisher
}

// NewReminderService creates a new reminder service
func NewReminderService(
	arrivalRepo interfaces.ArrivalRepository,
	condemnationRepo interfaces.CondemnationRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.ReminderService {
	return &reminderService{
		arrivalRepo:      arrivalRepo,
		condemnationRepo: condemnationRepo,
		eventPublisher:   eventPublisher,
	}
}

// DueArrivals returns unsent arrivals whose reminder date has been reached
func (s *reminderService) DueArrivals(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, error) {
	due, err := s.arrivalRepo.GetDue(ctx, entities.CivilDate(asOf))
	if err != nil {
		return nil, fmt.Errorf("failed to get due arrivals: %w", err)
	}
	return due, nil
}

// DueCondemnations returns unsent condemnations whose reminder date has been reached
func (s *reminderService) DueCondemnations(ctx context.Context, asOf time.Time) ([]*entities.DueCondemnation, error) {
	due, err := s.condemnationRepo.GetDue(ctx, entities.CivilDate(asOf))
	if err != nil {
		return nil, fmt.Errorf("failed to get due condemnations: %w", err)
	}
	return due, nil
}

// DueInGuild returns both kinds of due reminders for the repositories' guild
func (s *reminderService) DueInGuild(ctx context.Context, asOf time.Time) (*interfaces.DueSummary, error) {
	asOf = entities.CivilDate(asOf)

	arrivals, err := s.arrivalRepo.GetDueInGuild(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to get due arrivals: %w", err)
	}

	condemnations, err := s.condemnationRepo.GetDueInGuild(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to get due condemnations: %w", err)
	}

	return &interfaces.DueSummary{
		AsOf:          asOf,
		Arrivals:      arrivals,
		Condemnations: condemnations,
	}, nil
}

// Antecedents counts every condemnation recorded under the display name
func (s *reminderService) Antecedents(ctx context.Context, displayName string) (int64, error) {
	count, err := s.condemnationRepo.CountByDisplayName(ctx, strings.TrimSpace(displayName))
	if err != nil {
		return 0, fmt.Errorf("failed to count antecedents: %w", err)
	}
	return count, nil
}

// CompleteArrival marks the arrival reminder as sent.
// The sent event is only published when the flag actually flipped.
func (s *reminderService) CompleteArrival(ctx context.Context, item *entities.DueArrival, sentAt time.Time) error {
	marked, err := s.arrivalRepo.MarkReminderSent(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("failed to mark arrival %d as sent: %w", item.ID, err)
	}
	if !marked {
		return nil
	}

	if err := s.eventPublisher.Publish(events.ArrivalReminderSentEvent{
		ArrivalID:   item.ID,
		GuildID:     item.GuildID,
		ChannelID:   item.ChannelID,
		DisplayName: item.DisplayName,
		SentAt:      sentAt,
	}); err != nil {
		return fmt.Errorf("failed to publish arrival reminder sent event: %w", err)
	}

	return nil
}

// CompleteCondemnation marks the condemnation reminder as sent.
// The sent event is only published when the flag actually flipped.
func (s *reminderService) CompleteCondemnation(ctx context.Context, item *entities.DueCondemnation, sentAt time.Time) error {
	marked, err := s.condemnationRepo.MarkReminderSent(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("failed to mark condemnation %d as sent: %w", item.ID, err)
	}
	if !marked {
		return nil
	}

	if err := s.eventPublisher.Publish(events.CondemnationReminderSentEvent{
		CondemnationID: item.ID,
		GuildID:        item.GuildID,
		ChannelID:      item.ChannelID,
		DisplayName:    item.DisplayName,
		SentAt:         sentAt,
	}); err != nil {
		return fmt.Errorf("failed to publish condemnation reminder sent event: %w", err)
	}

	return nil
}
