package cmd

import (
	"context"
	"fmt"
	"time"

	"revobot/application"
	"revobot/bot"
	"revobot/config"
	"revobot/database"
	"revobot/domain/interfaces"
	"revobot/infrastructure"

	log "github.com/sirupsen/logrus"
)

// shutdownTimeout bounds how long shutdown waits for an in-flight reminder pass
const shutdownTimeout = 30 * time.Second

// Run initializes and starts the application
func Run(ctx context.Context) error {
	// Load configuration; a missing token stops here, before anything is scheduled
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := ConfigureLogging(cfg.LogLevel, cfg.IsProduction()); err != nil {
		return err
	}
	log.WithField("environment", cfg.Environment).Info("Starting revobot...")

	location, err := cfg.Location()
	if err != nil {
		return err
	}

	// Apply pending migrations
	log.Info("Applying database migrations...")
	if err := database.MigrateUp(cfg.GetDatabaseURL()); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully")

	// Initialize event publisher
	eventPublisher, closePublisher, err := newEventPublisher(ctx, cfg.NATSServers)
	if err != nil {
		return err
	}
	defer closePublisher()

	// Initialize unit of work factory
	uowFactory := infrastructure.NewUnitOfWorkFactory(db, eventPublisher)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{
		Token:    cfg.DiscordToken,
		GuildID:  cfg.GuildID,
		Location: location,
	}, uowFactory)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	// Reminder pipeline: dispatcher delivers through the bot, worker schedules passes
	dispatcher := application.NewReminderDispatcher(uowFactory, discordBot.GetReminderPoster())
	worker := application.NewReminderWorker(dispatcher, cfg.ReminderInterval, location)
	discordBot.SetReminderTrigger(worker)
	discordBot.SetReminderWorkerCleanup(worker.Start(ctx, discordBot.Ready()))

	if err := discordBot.Open(); err != nil {
		discordBot.Close()
		return fmt.Errorf("failed to connect Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.WithFields(log.Fields{
		"interval": cfg.ReminderInterval.String(),
		"timezone": cfg.ReminderTimezone,
	}).Info("Bot is running")
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")
	if err := closeWithTimeout(discordBot.Close, shutdownTimeout); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	} else {
		log.Info("Shutdown completed")
	}

	return nil
}

// closeWithTimeout runs closeFn, which waits for any in-flight reminder pass, and gives up after timeout
func closeWithTimeout(closeFn func() error, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		done <- closeFn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout of %s exceeded", timeout)
	}
}

// newEventPublisher connects to NATS when servers are configured, or returns a no-op publisher
func newEventPublisher(ctx context.Context, servers string) (interfaces.EventPublisher, func(), error) {
	if servers == "" {
		log.Info("NATS_SERVERS not set, events will not be published")
		return infrastructure.NewNoopEventPublisher(), func() {}, nil
	}

	log.WithField("servers", servers).Info("Connecting to NATS...")
	client := infrastructure.NewNATSClient(servers)
	if err := client.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	subjectMapper := infrastructure.NewEventSubjectMapper()
	if err := client.EnsureStream(subjectMapper.GetAllSubjects()); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to ensure NATS stream: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Errorf("Error closing NATS connection: %v", err)
		}
	}
	return infrastructure.NewNATSEventPublisher(client, subjectMapper), closeFn, nil
}
