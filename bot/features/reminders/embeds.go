package reminders

import (
	"fmt"
	"strings"
	"time"

	"revobot/application"
	"revobot/application/dto"
	"revobot/bot/common"
	"revobot/domain/entities"
	"revobot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// reminderMentions lets reminders ping roles and nothing else
func reminderMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeRoles},
	}
}

// BuildArrivalReminderMessage renders the message posted seven days after an arrival
func BuildArrivalReminderMessage(reminder dto.ArrivalReminderDTO) *discordgo.MessageSend {
	profile := reminder.ProfileLabel
	if profile == "" {
		profile = entities.Placeholder
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎉 Un nouveau membre a fait son entrée !",
		Description: fmt.Sprintf("**%s** a rejoint l’alliance il y a **%d jours** 🎂", reminder.DisplayName, entities.ReminderDelayDays),
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Profil", Value: profile, Inline: true},
			{Name: "Décision ⚖️", Value: "On garde ou on kick ?"},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Rappel arrivants • " + common.BotName},
		Timestamp: reminder.Timestamp.Format(time.RFC3339),
	}

	return &discordgo.MessageSend{
		Content:         common.RolePing(reminder.NotifierRoleID),
		Embeds:          []*discordgo.MessageEmbed{embed},
		AllowedMentions: reminderMentions(),
	}
}

// BuildCondemnationReminderMessage renders the message posted seven days after a condemnation
func BuildCondemnationReminderMessage(reminder dto.CondemnationReminderDTO) *discordgo.MessageSend {
	restoreRole := reminder.RestoreRole
	if restoreRole == "" {
		restoreRole = entities.Placeholder
	}

	embed := &discordgo.MessageEmbed{
		Title: "⚖️ Jugement rendu",
		Description: fmt.Sprintf("**%s** a été condamné le **%s**.\nLa sentence est désormais levée ⛓️",
			reminder.DisplayName, entities.FormatEventDate(reminder.EventDate)),
		Color: common.ColorDanger,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Il récupère son rôle de", Value: restoreRole, Inline: true},
			{Name: "Antécédents 📜", Value: fmt.Sprintf("**%d** condamnation(s) au total.", reminder.Antecedents)},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "Rappel condamnés • " + common.BotName},
		Timestamp: reminder.Timestamp.Format(time.RFC3339),
	}

	return &discordgo.MessageSend{
		Content:         common.RolePing(reminder.NotifierRoleID),
		Embeds:          []*discordgo.MessageEmbed{embed},
		AllowedMentions: reminderMentions(),
	}
}

// BuildDueEmbed lists a guild's due-but-unsent reminders; nil when nothing is due
func BuildDueEmbed(summary *interfaces.DueSummary) *discordgo.MessageEmbed {
	if summary == nil || summary.Total() == 0 {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:  "Éléments DÛS",
		Color:  common.ColorWarning,
		Footer: &discordgo.MessageEmbedFooter{Text: "Au " + entities.FormatEventDate(summary.AsOf)},
	}

	if len(summary.Arrivals) > 0 {
		lines := make([]string, 0, len(summary.Arrivals))
		for _, a := range summary.Arrivals {
			lines = append(lines, fmt.Sprintf("• #%d — %s (arrivé le %s) — profil: %s",
				a.ID, a.DisplayName, entities.FormatEventDate(a.EventDate), a.Profile.Label()))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Arrivées (%d)", len(summary.Arrivals)),
			Value: common.Truncate(strings.Join(lines, "\n"), common.MaxEmbedFieldValue),
		})
	}

	if len(summary.Condemnations) > 0 {
		lines := make([]string, 0, len(summary.Condemnations))
		for _, c := range summary.Condemnations {
			lines = append(lines, fmt.Sprintf("• #%d — %s (condamné le %s) — rôle: %s",
				c.ID, c.DisplayName, entities.FormatEventDate(c.EventDate), c.RoleDisplay().Render()))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Condamnations (%d)", len(summary.Condemnations)),
			Value: common.Truncate(strings.Join(lines, "\n"), common.MaxEmbedFieldValue),
		})
	}

	return embed
}

// FormatRunReport summarizes a forced pass for the invoking administrator
func FormatRunReport(report *application.RunReport) string {
	due := report.ArrivalsDue + report.CondemnationsDue
	message := fmt.Sprintf("🔁 Passage des rappels effectué (au %s) : %d envoyé(s) sur %d dû(s).\n• Arrivées : %d/%d\n• Condamnations : %d/%d",
		entities.FormatEventDate(report.AsOf),
		report.Sent(), due,
		report.ArrivalsSent, report.ArrivalsDue,
		report.CondemnationsSent, report.CondemnationsDue,
	)
	if report.Failures > 0 {
		message += fmt.Sprintf("\n⚠️ %d échec(s) : ils seront retentés au prochain passage.", report.Failures)
	}
	return message
}
