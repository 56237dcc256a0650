package reminders

import (
	"context"
	"fmt"

	"revobot/application"
	"revobot/application/dto"
	"revobot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

var _ application.ReminderPoster = (*Feature)(nil)

// PostArrivalReminder posts an arrival reminder to its configured channel
func (f *Feature) PostArrivalReminder(ctx context.Context, reminder dto.ArrivalReminderDTO) error {
	return f.send(ctx, reminder.GuildID, reminder.ChannelID, BuildArrivalReminderMessage(reminder))
}

// PostCondemnationReminder posts a condemnation reminder to its configured channel
func (f *Feature) PostCondemnationReminder(ctx context.Context, reminder dto.CondemnationReminderDTO) error {
	return f.send(ctx, reminder.GuildID, reminder.ChannelID, BuildCondemnationReminderMessage(reminder))
}

// send resolves the channel then delivers the message; either failure is returned
func (f *Feature) send(ctx context.Context, guildID, channelID int64, message *discordgo.MessageSend) error {
	channelIDStr := common.FormatID(channelID)

	channel, err := f.session.Channel(channelIDStr, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to resolve channel %d: %w", channelID, err)
	}

	msg, err := f.session.ChannelMessageSendComplex(channel.ID, message, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send reminder to channel %d: %w", channelID, err)
	}

	log.WithFields(log.Fields{
		"guild_id":   guildID,
		"channel_id": channelID,
		"message_id": msg.ID,
	}).Debug("Reminder message sent")
	return nil
}
