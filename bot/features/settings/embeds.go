package settings

import (
	"fmt"

	"revobot/bot/common"
	"revobot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// BuildSettingsEmbed renders a guild's reminder configuration
func BuildSettingsEmbed(guildName string, settings *entities.GuildSettings) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Configuration • %s", guildName),
		Color: common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Salon arrivants", Value: common.ChannelMention(settings.ArrivalChannelID)},
			{Name: "Salon condamnés", Value: common.ChannelMention(settings.CondemnationChannelID)},
			{Name: "Rôle gérants", Value: common.RoleMention(settings.NotifierRoleID)},
		},
	}
}
