package reminders

import (
	"context"

	"revobot/bot/common"
	"revobot/domain/entities"
	"revobot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleDue handles the /due command
func (f *Feature) handleDue(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to parse guild ID"), false)
		return
	}

	ctx := context.Background()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"), false)
		return
	}
	defer uow.Rollback()

	reminderService := services.NewReminderService(
		uow.ArrivalRepository(),
		uow.CondemnationRepository(),
		uow.EventBus(),
	)

	summary, err := reminderService.DueInGuild(ctx, entities.Today(f.clock(), f.location))
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to list due reminders"), false)
		return
	}

	embed := BuildDueEmbed(summary)
	if embed == nil {
		common.RespondEphemeral(s, i, "Rien n'est dû pour ce serveur ✅")
		return
	}
	common.RespondEmbed(s, i, embed)
}

// handleForceRun handles the /rappels command
func (f *Feature) handleForceRun(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !common.IsInteractionAdmin(s, i) {
		common.RespondWithError(s, i, "❌ Permission requise : Administrateur.")
		return
	}
	if f.trigger == nil {
		common.RespondWithError(s, i, "❌ Le planificateur de rappels n'est pas encore démarré.")
		return
	}

	// A pass can outlast the three second interaction deadline
	if err := common.DeferEphemeral(s, i); err != nil {
		log.Errorf("Failed to defer interaction: %v", err)
		return
	}

	report, err := f.trigger.RunNow(context.Background())
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "forced reminder pass failed"), true)
		return
	}

	log.WithFields(log.Fields{
		"guild_id": i.GuildID,
		"sent":     report.Sent(),
		"failures": report.Failures,
	}).Info("Forced reminder pass completed")

	common.FollowUpEphemeral(s, i, FormatRunReport(report))
}
