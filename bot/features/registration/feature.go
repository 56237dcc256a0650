package registration

import (
	"revobot/application"

	"github.com/bwmarrin/discordgo"
)

// Feature records arrivals and condemnations and answers antecedent lookups
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
}

// NewFeature creates a new registration feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
	}
}

// HandleCommand routes registration commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "arrivee":
		f.handleArrival(s, i)
	case "condamne":
		f.handleCondemnation(s, i)
	case "antecedents":
		f.handleAntecedents(s, i)
	}
}
