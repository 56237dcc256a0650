package reminders

import (
	"strings"
	"testing"
	"time"

	"revobot/application"
	"revobot/application/dto"
	"revobot/domain/entities"
	"revobot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBuildArrivalReminderMessage(t *testing.T) {
	t.Parallel()

	sentAt := time.Date(2025, 10, 21, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		role        *int64
		wantContent string
	}{
		{name: "pings notifier role", role: int64Ptr(999), wantContent: "<@&999>"},
		{name: "no ping when role unset", role: nil, wantContent: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := BuildArrivalReminderMessage(dto.ArrivalReminderDTO{
				ArrivalID:      1,
				GuildID:        10,
				ChannelID:      111,
				NotifierRoleID: tt.role,
				DisplayName:    "Alice",
				EventDate:      date(2025, 10, 14),
				ProfileLabel:   "PVM OPTI",
				Timestamp:      sentAt,
			})

			assert.Equal(t, tt.wantContent, msg.Content)
			require.NotNil(t, msg.AllowedMentions)
			assert.Equal(t, []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeRoles}, msg.AllowedMentions.Parse)

			require.Len(t, msg.Embeds, 1)
			embed := msg.Embeds[0]
			assert.Equal(t, "🎉 Un nouveau membre a fait son entrée !", embed.Title)
			assert.Equal(t, "**Alice** a rejoint l’alliance il y a **7 jours** 🎂", embed.Description)
			require.Len(t, embed.Fields, 2)
			assert.Equal(t, "Profil", embed.Fields[0].Name)
			assert.Equal(t, "PVM OPTI", embed.Fields[0].Value)
			assert.True(t, embed.Fields[0].Inline)
			assert.Equal(t, "On garde ou on kick ?", embed.Fields[1].Value)
			assert.Equal(t, "Rappel arrivants • RevoBot", embed.Footer.Text)
			assert.Equal(t, "2025-10-21T08:30:00Z", embed.Timestamp)
		})
	}
}

func TestBuildCondemnationReminderMessage(t *testing.T) {
	t.Parallel()

	msg := BuildCondemnationReminderMessage(dto.CondemnationReminderDTO{
		CondemnationID: 2,
		GuildID:        10,
		ChannelID:      222,
		NotifierRoleID: int64Ptr(999),
		DisplayName:    "Bob",
		EventDate:      date(2025, 10, 1),
		RestoreRole:    "Scout",
		Antecedents:    2,
		Timestamp:      time.Date(2025, 10, 8, 9, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "<@&999>", msg.Content)
	require.Len(t, msg.Embeds, 1)
	embed := msg.Embeds[0]
	assert.Equal(t, "⚖️ Jugement rendu", embed.Title)
	assert.Equal(t, "**Bob** a été condamné le **01/10/2025**.\nLa sentence est désormais levée ⛓️", embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Il récupère son rôle de", embed.Fields[0].Name)
	assert.Equal(t, "Scout", embed.Fields[0].Value)
	assert.Equal(t, "Antécédents 📜", embed.Fields[1].Name)
	assert.Equal(t, "**2** condamnation(s) au total.", embed.Fields[1].Value)
	assert.Equal(t, "Rappel condamnés • RevoBot", embed.Footer.Text)
}

func TestBuildCondemnationReminderMessage_EmptyRoleShowsPlaceholder(t *testing.T) {
	t.Parallel()

	msg := BuildCondemnationReminderMessage(dto.CondemnationReminderDTO{DisplayName: "Bob", EventDate: date(2025, 10, 1)})
	assert.Equal(t, "—", msg.Embeds[0].Fields[0].Value)
}

func TestBuildDueEmbed(t *testing.T) {
	t.Parallel()

	t.Run("nothing due", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, BuildDueEmbed(&interfaces.DueSummary{AsOf: date(2025, 10, 21)}))
		assert.Nil(t, BuildDueEmbed(nil))
	})

	t.Run("lists both kinds", func(t *testing.T) {
		t.Parallel()

		label := "Scout"
		summary := &interfaces.DueSummary{
			AsOf: date(2025, 10, 21),
			Arrivals: []*entities.DueArrival{
				{Arrival: entities.Arrival{ID: 4, DisplayName: "Alice", EventDate: date(2025, 10, 14), Profile: entities.ArrivalProfilePvpOpti}},
			},
			Condemnations: []*entities.DueCondemnation{
				{Condemnation: entities.Condemnation{ID: 7, DisplayName: "Bob", EventDate: date(2025, 10, 1), RestoreRoleLabel: &label}},
				{Condemnation: entities.Condemnation{ID: 8, DisplayName: "Carl", EventDate: date(2025, 10, 2), RestoreRoleID: int64Ptr(55)}},
			},
		}

		embed := BuildDueEmbed(summary)
		require.NotNil(t, embed)
		assert.Equal(t, "Éléments DÛS", embed.Title)
		require.Len(t, embed.Fields, 2)
		assert.Equal(t, "Arrivées (1)", embed.Fields[0].Name)
		assert.Equal(t, "• #4 — Alice (arrivé le 14/10/2025) — profil: PVP OPTI", embed.Fields[0].Value)
		assert.Equal(t, "Condamnations (2)", embed.Fields[1].Name)
		assert.Equal(t,
			"• #7 — Bob (condamné le 01/10/2025) — rôle: Scout\n• #8 — Carl (condamné le 02/10/2025) — rôle: <@&55>",
			embed.Fields[1].Value,
		)
	})

	t.Run("long lists are truncated to the field limit", func(t *testing.T) {
		t.Parallel()

		summary := &interfaces.DueSummary{AsOf: date(2025, 10, 21)}
		for i := int64(1); i <= 60; i++ {
			summary.Arrivals = append(summary.Arrivals, &entities.DueArrival{
				Arrival: entities.Arrival{ID: i, DisplayName: strings.Repeat("x", 20), EventDate: date(2025, 10, 1), Profile: entities.ArrivalProfilePvmBL},
			})
		}

		embed := BuildDueEmbed(summary)
		require.NotNil(t, embed)
		assert.Equal(t, "Arrivées (60)", embed.Fields[0].Name)
		assert.LessOrEqual(t, len(embed.Fields[0].Value), 1024)
	})
}

func TestFormatRunReport(t *testing.T) {
	t.Parallel()

	report := &application.RunReport{
		AsOf:              date(2025, 10, 21),
		ArrivalsDue:       2,
		ArrivalsSent:      2,
		CondemnationsDue:  1,
		CondemnationsSent: 0,
		Failures:          1,
	}

	got := FormatRunReport(report)
	assert.Contains(t, got, "au 21/10/2025")
	assert.Contains(t, got, "2 envoyé(s) sur 3 dû(s)")
	assert.Contains(t, got, "• Condamnations : 0/1")
	assert.Contains(t, got, "1 échec(s)")
}
