package entities

import (
	"strings"
	"time"
)

// Arrival records a member joining the community on a given date
type Arrival struct {
	ID             int64          `db:"id"`
	GuildID        int64          `db:"guild_id"`
	DisplayName    string         `db:"display_name"`
	EventDate      time.Time      `db:"event_date"`
	Profile        ArrivalProfile `db:"profile"`
	ReminderSent   bool           `db:"reminder_sent"`
	ReminderSentAt *time.Time     `db:"reminder_sent_at"`
	CreatedAt      time.Time      `db:"created_at"`
}

// NewArrival validates and normalizes a new arrival
func NewArrival(guildID int64, displayName string, eventDate time.Time, profile ArrivalProfile) (*Arrival, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyDisplayName
	}
	if !profile.IsValid() {
		return nil, ErrInvalidProfile
	}

	return &Arrival{
		GuildID:     guildID,
		DisplayName: displayName,
		EventDate:   CivilDate(eventDate),
		Profile:     profile,
	}, nil
}

// DueDate returns the date the arrival reminder becomes due
func (a *Arrival) DueDate() time.Time {
	return ReminderDueDate(a.EventDate)
}

// DueArrival is an unsent arrival joined with its guild's delivery settings
type DueArrival struct {
	Arrival
	ChannelID      int64  `db:"arrival_channel_id"`
	NotifierRoleID *int64 `db:"notifier_role_id"`
}
