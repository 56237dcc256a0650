package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"revobot/domain/entities"
	"revobot/domain/events"
	"revobot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// registrationService implements the RegistrationService interface
type registrationService struct {
	arrivalRepo      interfaces.ArrivalRepository
	condemnationRepo interfaces.CondemnationRepository
	eventPublisher   interfaces.EventPublisher
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(
	arrivalRepo interfaces.ArrivalRepository,
	condemnationRepo interfaces.CondemnationRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.RegistrationService {
	return &registrationService{
		arrivalRepo:      arrivalRepo,
		condemnationRepo: condemnationRepo,
		eventPublisher:   eventPublisher,
	}
}

// RecordArrival validates and stores a new arrival
func (s *registrationService) RecordArrival(ctx context.Context, guildID int64, displayName string, eventDate time.Time, profile entities.ArrivalProfile) (*entities.Arrival, error) {
	arrival, err := entities.NewArrival(guildID, displayName, eventDate, profile)
	if err != nil {
		return nil, err
	}

	if err := s.arrivalRepo.Create(ctx, arrival); err != nil {
		return nil, fmt.Errorf("failed to create arrival: %w", err)
	}

	if err := s.eventPublisher.Publish(events.ArrivalRecordedEvent{
		ArrivalID:   arrival.ID,
		GuildID:     arrival.GuildID,
		DisplayName: arrival.DisplayName,
		EventDate:   arrival.EventDate,
		Profile:     string(arrival.Profile),
	}); err != nil {
		return nil, fmt.Errorf("failed to publish arrival recorded event: %w", err)
	}

	log.WithFields(log.Fields{
		"guild_id":   guildID,
		"arrival_id": arrival.ID,
		"profile":    arrival.Profile,
		"event_date": entities.FormatEventDate(arrival.EventDate),
	}).Info("Arrival recorded")

	return arrival, nil
}

// RecordCondemnation validates and stores a new condemnation
func (s *registrationService) RecordCondemnation(ctx context.Context, guildID int64, displayName string, eventDate time.Time, restoreRoleID *int64, restoreRoleLabel *string) (*entities.Condemnation, error) {
	condemnation, err := entities.NewCondemnation(guildID, displayName, eventDate, restoreRoleID, restoreRoleLabel)
	if err != nil {
		return nil, err
	}

	if err := s.condemnationRepo.Create(ctx, condemnation); err != nil {
		return nil, fmt.Errorf("failed to create condemnation: %w", err)
	}

	if err := s.eventPublisher.Publish(events.CondemnationRecordedEvent{
		CondemnationID: condemnation.ID,
		GuildID:        condemnation.GuildID,
		DisplayName:    condemnation.DisplayName,
		EventDate:      condemnation.EventDate,
	}); err != nil {
		return nil, fmt.Errorf("failed to publish condemnation recorded event: %w", err)
	}

	log.WithFields(log.Fields{
		"guild_id":        guildID,
		"condemnation_id": condemnation.ID,
		"event_date":      entities.FormatEventDate(condemnation.EventDate),
	}).Info("Condemnation recorded")

	return condemnation, nil
}

// CountCondemnations returns the number of condemnations recorded for a display name
func (s *registrationService) CountCondemnations(ctx context.Context, displayName string) (int64, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return 0, entities.ErrEmptyDisplayName
	}

	count, err := s.condemnationRepo.CountByDisplayName(ctx, displayName)
	if err != nil {
		return 0, fmt.Errorf("failed to count condemnations: %w", err)
	}

	return count, nil
}
