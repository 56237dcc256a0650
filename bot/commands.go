package bot

import (
	"fmt"

	"revobot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

var (
	manageGuildPermission   int64 = discordgo.PermissionManageGuild
	administratorPermission int64 = discordgo.PermissionAdministrator
	dmPermission                  = false
)

// applicationCommands returns every slash command the bot serves
func applicationCommands() []*discordgo.ApplicationCommand {
	profileChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.AllArrivalProfiles()))
	for _, profile := range entities.AllArrivalProfiles() {
		profileChoices = append(profileChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  profile.Label(),
			Value: string(profile),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:                     "parametres",
			Description:              "Configurer les rappels de ce serveur",
			DefaultMemberPermissions: &manageGuildPermission,
			DMPermission:             &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "salon-arrivants",
					Description: "Définir le salon des rappels d'arrivées (vide pour désactiver)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         "salon",
							Description:  "Salon des rappels d'arrivées",
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
							Required:     false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "salon-condamnes",
					Description: "Définir le salon des rappels de condamnations (vide pour désactiver)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         "salon",
							Description:  "Salon des rappels de condamnations",
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
							Required:     false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "role-gerants",
					Description: "Définir le rôle mentionné lors des rappels (vide pour retirer)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionRole,
							Name:        "role",
							Description: "Rôle des gérants",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "voir",
					Description: "Voir la configuration enregistrée pour ce serveur",
				},
			},
		},
		{
			Name:         "arrivee",
			Description:  "Enregistrer l'arrivée d'un membre (date JJ/MM/AAAA)",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "pseudo",
					Description: "Pseudo libre (pas forcément un membre Discord)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Date d'arrivée JJ/MM/AAAA",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "profil",
					Description: "Profil du joueur",
					Required:    true,
					Choices:     profileChoices,
				},
			},
		},
		{
			Name:         "condamne",
			Description:  "Enregistrer une condamnation (date JJ/MM/AAAA)",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "pseudo",
					Description: "Pseudo libre",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Date JJ/MM/AAAA",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role_a_restituer",
					Description: "(Optionnel) Rôle à lui rendre (sélecteur Discord)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "role_nom",
					Description: "(Optionnel) Nom du rôle en texte si le rôle n'apparaît pas",
					Required:    false,
				},
			},
		},
		{
			Name:         "antecedents",
			Description:  "Compter les condamnations d'un pseudo",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "pseudo",
					Description: "Pseudo recherché (sans tenir compte des majuscules)",
					Required:    true,
				},
			},
		},
		{
			Name:         "due",
			Description:  "Lister ce qui est dû (arrivées/condamnations) pour ce serveur",
			DMPermission: &dmPermission,
		},
		{
			Name:                     "rappels",
			Description:              "Forcer l'envoi immédiat des rappels dus",
			DefaultMemberPermissions: &administratorPermission,
			DMPermission:             &dmPermission,
		},
	}
}

// registerCommands registers all slash commands with Discord.
// Commands go to the configured guild when set so they show up immediately, globally otherwise.
func (b *Bot) registerCommands() error {
	appID := b.session.State.User.ID

	for _, cmd := range applicationCommands() {
		_, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	scope := "global"
	if b.config.GuildID != "" {
		scope = "guild " + b.config.GuildID
	}
	log.WithField("scope", scope).Info("Slash commands registered")

	return nil
}
