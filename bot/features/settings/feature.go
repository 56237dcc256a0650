package settings

import (
	"revobot/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles guild settings management
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
}

// NewFeature creates a new settings feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
	}
}

// HandleCommand routes /parametres subcommands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "salon-arrivants":
		f.handleArrivalChannel(s, i)
	case "salon-condamnes":
		f.handleCondemnationChannel(s, i)
	case "role-gerants":
		f.handleNotifierRole(s, i)
	case "voir":
		f.handleShow(s, i)
	}
}
