package settings

import (
	"context"
	"fmt"

	"revobot/bot/common"
	"revobot/domain/interfaces"
	"revobot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const permissionDeniedMessage = "❌ Permission requise : Gérer le serveur."

type settingUpdate func(svc interfaces.GuildSettingsService, ctx context.Context, guildID int64, id *int64) error

// handleArrivalChannel handles the /parametres salon-arrivants command
func (f *Feature) handleArrivalChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID, ok := f.optionID(s, i, "salon")
	if !ok {
		return
	}

	err := f.updateSetting(i, channelID, interfaces.GuildSettingsService.UpdateArrivalChannel)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	message := "✅ Salon Arrivants désactivé : plus aucun rappel d'arrivée ne sera envoyé."
	if channelID != nil {
		message = fmt.Sprintf("✅ Salon Arrivants : <#%d>", *channelID)
	}
	common.RespondEphemeral(s, i, message)
}

// handleCondemnationChannel handles the /parametres salon-condamnes command
func (f *Feature) handleCondemnationChannel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID, ok := f.optionID(s, i, "salon")
	if !ok {
		return
	}

	err := f.updateSetting(i, channelID, interfaces.GuildSettingsService.UpdateCondemnationChannel)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	message := "✅ Salon Condamnés désactivé : plus aucun rappel de condamnation ne sera envoyé."
	if channelID != nil {
		message = fmt.Sprintf("✅ Salon Condamnés : <#%d>", *channelID)
	}
	common.RespondEphemeral(s, i, message)
}

// handleNotifierRole handles the /parametres role-gerants command
func (f *Feature) handleNotifierRole(s *discordgo.Session, i *discordgo.InteractionCreate) {
	roleID, ok := f.optionID(s, i, "role")
	if !ok {
		return
	}

	err := f.updateSetting(i, roleID, interfaces.GuildSettingsService.UpdateNotifierRole)
	if err != nil {
		common.HandleError(s, i, err, false)
		return
	}

	message := "✅ Rôle des gérants retiré : les rappels ne mentionneront personne."
	if roleID != nil {
		message = fmt.Sprintf("✅ Rôle des gérants défini : <@&%d>", *roleID)
	}
	common.RespondEphemeral(s, i, message)
}

// handleShow handles the /parametres voir command
func (f *Feature) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID: %v", err)
		common.RespondWithError(s, i, "❌ Impossible de traiter la commande.")
		return
	}

	ctx := context.Background()

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to begin transaction"), false)
		return
	}
	defer uow.Rollback()

	settings, err := services.NewGuildSettingsService(uow.GuildSettingsRepository()).GetSettings(ctx, guildID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to load guild settings"), false)
		return
	}

	if settings == nil {
		common.RespondEphemeral(s, i, "Aucune configuration enregistrée pour ce serveur.")
		return
	}

	guildName := i.GuildID
	if guild, err := s.State.Guild(i.GuildID); err == nil {
		guildName = guild.Name
	}

	common.RespondEmbed(s, i, BuildSettingsEmbed(guildName, settings))
}

// optionID reads the optional channel or role of a subcommand.
// It answers the interaction itself and returns ok=false when the command must stop.
func (f *Feature) optionID(s *discordgo.Session, i *discordgo.InteractionCreate, name string) (*int64, bool) {
	if !common.CanManageGuild(i) {
		common.RespondWithError(s, i, permissionDeniedMessage)
		return nil, false
	}

	options := common.OptionMap(i.ApplicationCommandData().Options[0].Options)
	opt, present := options[name]
	if !present {
		return nil, true
	}

	var raw string
	switch opt.Type {
	case discordgo.ApplicationCommandOptionChannel:
		raw = opt.ChannelValue(nil).ID
	case discordgo.ApplicationCommandOptionRole:
		raw = opt.RoleValue(nil, "").ID
	default:
		raw = fmt.Sprint(opt.Value)
	}

	id, err := common.ParseID(raw)
	if err != nil {
		log.Errorf("Failed to parse %s option: %v", name, err)
		common.RespondWithError(s, i, "❌ Sélection invalide.")
		return nil, false
	}
	return &id, true
}

func (f *Feature) updateSetting(i *discordgo.InteractionCreate, id *int64, update settingUpdate) error {
	guildID, err := common.ParseID(i.GuildID)
	if err != nil {
		return common.NewSystemError(err, "failed to parse guild ID")
	}

	ctx := context.Background()

	// Create guild-scoped unit of work
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return common.NewSystemError(err, "failed to begin transaction")
	}
	defer uow.Rollback()

	guildSettingsService := services.NewGuildSettingsService(uow.GuildSettingsRepository())

	if err := update(guildSettingsService, ctx, guildID, id); err != nil {
		return common.NewSystemError(err, "failed to update guild settings")
	}

	if err := uow.Commit(); err != nil {
		return common.NewSystemError(err, "failed to commit transaction")
	}

	log.WithFields(log.Fields{
		"guild_id": guildID,
		"command":  i.ApplicationCommandData().Options[0].Name,
		"value":    id,
	}).Info("Guild settings updated")
	return nil
}
