package reminders

import (
	"context"
	"time"

	"revobot/application"

	"github.com/bwmarrin/discordgo"
)

// Trigger forces an immediate reminder pass
type Trigger interface {
	RunNow(ctx context.Context) (*application.RunReport, error)
}

// Feature posts reminder messages and serves the /due and /rappels commands
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	location   *time.Location
	clock      func() time.Time
	trigger    Trigger
}

// NewFeature creates a new reminders feature instance.
// location decides which calendar day /due treats as today.
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory, location *time.Location) *Feature {
	if location == nil {
		location = time.UTC
	}
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		location:   location,
		clock:      time.Now,
	}
}

// SetTrigger wires the worker used by /rappels
func (f *Feature) SetTrigger(trigger Trigger) {
	f.trigger = trigger
}

// HandleCommand routes reminder commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "due":
		f.handleDue(s, i)
	case "rappels":
		f.handleForceRun(s, i)
	}
}
