package bot

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"revobot/application"
	"revobot/bot/features/registration"
	"revobot/bot/features/reminders"
	"revobot/bot/features/settings"
	"revobot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token    string
	GuildID  string         // Optional guild for command registration
	Location *time.Location // Calendar used for "today" in /due
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	// Core components
	config     Config
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory

	// Readiness signal, closed on the first Ready event
	ready     chan struct{}
	readyOnce sync.Once

	// Feature modules
	settings     *settings.Feature
	registration *registration.Feature
	reminders    *reminders.Feature

	// Worker cleanup functions
	stopReminderWorker func()
}

// New creates a new bot instance with all features.
// The gateway connection is not opened until Open is called.
func New(config Config, uowFactory application.UnitOfWorkFactory) (*Bot, error) {
	// Create Discord session
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	// Create bot instance
	bot := &Bot{
		config:     config,
		session:    dg,
		uowFactory: uowFactory,
		ready:      make(chan struct{}),
	}

	// Create feature modules
	bot.settings = settings.NewFeature(dg, uowFactory)
	bot.registration = registration.NewFeature(dg, uowFactory)
	bot.reminders = reminders.NewFeature(dg, uowFactory, config.Location)

	// Register handlers
	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleGuildCreate)

	return bot, nil
}

// Open connects to the gateway and registers slash commands
func (b *Bot) Open() error {
	// Open websocket connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := b.registerCommands(); err != nil {
		b.session.Close()
		return fmt.Errorf("error registering commands: %w", err)
	}

	return nil
}

// Ready is closed once the gateway connection is ready
func (b *Bot) Ready() <-chan struct{} {
	return b.ready
}

// GetReminderPoster returns the ReminderPoster that delivers reminders through this session
func (b *Bot) GetReminderPoster() application.ReminderPoster {
	return b.reminders
}

// SetReminderTrigger wires the worker that /rappels forces
func (b *Bot) SetReminderTrigger(trigger reminders.Trigger) {
	b.reminders.SetTrigger(trigger)
}

// SetReminderWorkerCleanup sets the cleanup function for the reminder worker
func (b *Bot) SetReminderWorkerCleanup(cleanup func()) {
	b.stopReminderWorker = cleanup
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	// Stop background workers
	if b.stopReminderWorker != nil {
		b.stopReminderWorker()
	}
	log.Info("Background workers stopped")

	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleReady signals readiness the first time the gateway reports Ready
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"user":    r.User.Username,
		"user_id": r.User.ID,
		"guilds":  len(r.Guilds),
	}).Info("Connected to Discord")

	b.readyOnce.Do(func() {
		close(b.ready)
	})
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	// Every command is guild-scoped
	if i.GuildID == "" || i.Member == nil {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "parametres":
		b.settings.HandleCommand(s, i)
	case "arrivee", "condamne", "antecedents":
		b.registration.HandleCommand(s, i)
	case "due", "rappels":
		b.reminders.HandleCommand(s, i)
	}
}

// handleGuildCreate logs the reminder configuration of each guild the bot is in
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(g.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", g.ID, err)
		return
	}

	// Create guild-scoped unit of work
	uow := b.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Failed to begin transaction: %v", err)
		return
	}
	defer uow.Rollback()

	guildSettingsService := services.NewGuildSettingsService(uow.GuildSettingsRepository())

	settings, err := guildSettingsService.GetSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to load settings for guild %s (%s): %v", g.Name, g.ID, err)
		return
	}

	fields := log.Fields{
		"guild_id":   guildID,
		"guild_name": g.Name,
	}
	if settings == nil {
		log.WithFields(fields).Info("Guild available, no reminder configuration yet")
		return
	}

	fields["arrival_channel"] = settings.HasArrivalChannel()
	fields["condemnation_channel"] = settings.HasCondemnationChannel()
	fields["notifier_role"] = settings.HasNotifierRole()
	log.WithFields(fields).Info("Guild available")
}
