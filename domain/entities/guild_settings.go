package entities

// GuildSettings represents per-guild reminder configuration
type GuildSettings struct {
	GuildID               int64  `db:"guild_id"`
	ArrivalChannelID      *int64 `db:"arrival_channel_id"`      // Nullable - channel for arrival reminders
	CondemnationChannelID *int64 `db:"condemnation_channel_id"` // Nullable - channel for condemnation reminders
	NotifierRoleID        *int64 `db:"notifier_role_id"`        // Nullable - role pinged by reminders
}

// HasArrivalChannel checks if an arrival channel is configured
func (gs *GuildSettings) HasArrivalChannel() bool {
	return gs.ArrivalChannelID != nil && *gs.ArrivalChannelID > 0
}

// HasCondemnationChannel checks if a condemnation channel is configured
func (gs *GuildSettings) HasCondemnationChannel() bool {
	return gs.CondemnationChannelID != nil && *gs.CondemnationChannelID > 0
}

// HasNotifierRole checks if a notifier role is configured
func (gs *GuildSettings) HasNotifierRole() bool {
	return gs.NotifierRoleID != nil && *gs.NotifierRoleID > 0
}
