package dto

import "time"

// ArrivalReminderDTO contains all information needed to post an arrival reminder
type ArrivalReminderDTO struct {
	ArrivalID      int64
	GuildID        int64
	ChannelID      int64
	NotifierRoleID *int64
	DisplayName    string
	EventDate      time.Time
	ProfileLabel   string
	Timestamp      time.Time
}

// CondemnationReminderDTO contains all information needed to post a condemnation reminder
type CondemnationReminderDTO struct {
	CondemnationID int64
	GuildID        int64
	ChannelID      int64
	NotifierRoleID *int64
	DisplayName    string
	EventDate      time.Time
	RestoreRole    string // already rendered: role mention, label, or placeholder
	Antecedents    int64
	Timestamp      time.Time
}
