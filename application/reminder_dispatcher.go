package application

import (
	"context"
	"fmt"
	"time"

	"revobot/application/dto"
	"revobot/domain/entities"
	"revobot/domain/interfaces"
	"revobot/domain/services"

	log "github.com/sirupsen/logrus"
)

// RunReport summarizes one processing pass
type RunReport struct {
	AsOf              time.Time
	ArrivalsDue       int
	ArrivalsSent      int
	CondemnationsDue  int
	CondemnationsSent int
	Failures          int
}

// Sent returns the number of reminders delivered during the pass
func (r *RunReport) Sent() int {
	return r.ArrivalsSent + r.CondemnationsSent
}

// ReminderDispatcher selects due reminders and delivers them one by one
type ReminderDispatcher struct {
	uowFactory UnitOfWorkFactory
	poster     ReminderPoster
	now        func() time.Time
}

// NewReminderDispatcher creates a new reminder dispatcher
func NewReminderDispatcher(uowFactory UnitOfWorkFactory, poster ReminderPoster) *ReminderDispatcher {
	return &ReminderDispatcher{
		uowFactory: uowFactory,
		poster:     poster,
		now:        time.Now,
	}
}

// Run processes every reminder due as of asOf.
// A failed item is logged, counted and left pending; the batch always continues.
func (d *ReminderDispatcher) Run(ctx context.Context, asOf time.Time) (*RunReport, error) {
	asOf = entities.CivilDate(asOf)

	arrivals, condemnations, err := d.loadDue(ctx, asOf)
	if err != nil {
		return nil, err
	}

	report := &RunReport{
		AsOf:             asOf,
		ArrivalsDue:      len(arrivals),
		CondemnationsDue: len(condemnations),
	}

	log.WithFields(log.Fields{
		"as_of":             entities.FormatEventDate(asOf),
		"arrivals_due":      report.ArrivalsDue,
		"condemnations_due": report.CondemnationsDue,
	}).Info("Processing due reminders")

	for _, item := range arrivals {
		if err := d.dispatchArrival(ctx, item); err != nil {
			report.Failures++
			log.WithFields(log.Fields{
				"guild_id":   item.GuildID,
				"arrival_id": item.ID,
				"channel_id": item.ChannelID,
				"error":      err,
			}).Error("Failed to deliver arrival reminder")
			continue
		}
		report.ArrivalsSent++
	}

	for _, item := range condemnations {
		if err := d.dispatchCondemnation(ctx, item); err != nil {
			report.Failures++
			log.WithFields(log.Fields{
				"guild_id":        item.GuildID,
				"condemnation_id": item.ID,
				"channel_id":      item.ChannelID,
				"error":           err,
			}).Error("Failed to deliver condemnation reminder")
			continue
		}
		report.CondemnationsSent++
	}

	log.WithFields(log.Fields{
		"arrivals_sent":      report.ArrivalsSent,
		"condemnations_sent": report.CondemnationsSent,
		"failures":           report.Failures,
	}).Info("Completed reminder processing")

	return report, nil
}

// loadDue runs the cross-guild due scan in a read-only unit of work
func (d *ReminderDispatcher) loadDue(ctx context.Context, asOf time.Time) ([]*entities.DueArrival, []*entities.DueCondemnation, error) {
	uow := d.uowFactory.CreateGlobal()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	reminderService := services.NewReminderService(uow.ArrivalRepository(), uow.CondemnationRepository(), uow.EventBus())

	arrivals, err := reminderService.DueArrivals(ctx, asOf)
	if err != nil {
		return nil, nil, err
	}

	condemnations, err := reminderService.DueCondemnations(ctx, asOf)
	if err != nil {
		return nil, nil, err
	}

	return arrivals, condemnations, nil
}

func (d *ReminderDispatcher) dispatchArrival(ctx context.Context, item *entities.DueArrival) error {
	reminder := dto.ArrivalReminderDTO{
		ArrivalID:      item.ID,
		GuildID:        item.GuildID,
		ChannelID:      item.ChannelID,
		NotifierRoleID: item.NotifierRoleID,
		DisplayName:    item.DisplayName,
		EventDate:      item.EventDate,
		ProfileLabel:   item.Profile.Label(),
		Timestamp:      d.now(),
	}

	if err := d.poster.PostArrivalReminder(ctx, reminder); err != nil {
		return fmt.Errorf("failed to post arrival reminder: %w", err)
	}

	err := d.withGuildUnitOfWork(ctx, item.GuildID, func(reminderService interfaces.ReminderService) error {
		return reminderService.CompleteArrival(ctx, item, reminder.Timestamp)
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"guild_id":   item.GuildID,
		"arrival_id": item.ID,
		"channel_id": item.ChannelID,
	}).Info("Arrival reminder sent")

	return nil
}

func (d *ReminderDispatcher) dispatchCondemnation(ctx context.Context, item *entities.DueCondemnation) error {
	var antecedents int64
	err := d.withGuildUnitOfWork(ctx, item.GuildID, func(reminderService interfaces.ReminderService) error {
		count, err := reminderService.Antecedents(ctx, item.DisplayName)
		antecedents = count
		return err
	})
	if err != nil {
		return err
	}

	reminder := dto.CondemnationReminderDTO{
		CondemnationID: item.ID,
		GuildID:        item.GuildID,
		ChannelID:      item.ChannelID,
		NotifierRoleID: item.NotifierRoleID,
		DisplayName:    item.DisplayName,
		EventDate:      item.EventDate,
		RestoreRole:    item.RoleDisplay().Render(),
		Antecedents:    antecedents,
		Timestamp:      d.now(),
	}

	if err := d.poster.PostCondemnationReminder(ctx, reminder); err != nil {
		return fmt.Errorf("failed to post condemnation reminder: %w", err)
	}

	err = d.withGuildUnitOfWork(ctx, item.GuildID, func(reminderService interfaces.ReminderService) error {
		return reminderService.CompleteCondemnation(ctx, item, reminder.Timestamp)
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"guild_id":        item.GuildID,
		"condemnation_id": item.ID,
		"channel_id":      item.ChannelID,
		"antecedents":     antecedents,
	}).Info("Condemnation reminder sent")

	return nil
}

// withGuildUnitOfWork runs fn against a reminder service bound to a guild transaction
func (d *ReminderDispatcher) withGuildUnitOfWork(ctx context.Context, guildID int64, fn func(interfaces.ReminderService) error) error {
	uow := d.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	reminderService := services.NewReminderService(uow.ArrivalRepository(), uow.CondemnationRepository(), uow.EventBus())
	if err := fn(reminderService); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
