package entities

import (
	"strings"
	"time"
)

// Condemnation records a sanction handed to a member on a given date
type Condemnation struct {
	ID               int64      `db:"id"`
	GuildID          int64      `db:"guild_id"`
	DisplayName      string     `db:"display_name"`
	EventDate        time.Time  `db:"event_date"`
	RestoreRoleID    *int64     `db:"restore_role_id"`    // Nullable - role to give back
	RestoreRoleLabel *string    `db:"restore_role_label"` // Nullable - free text when no role can be referenced
	ReminderSent     bool       `db:"reminder_sent"`
	ReminderSentAt   *time.Time `db:"reminder_sent_at"`
	CreatedAt        time.Time  `db:"created_at"`
}

// NewCondemnation validates and normalizes a new condemnation
func NewCondemnation(guildID int64, displayName string, eventDate time.Time, restoreRoleID *int64, restoreRoleLabel *string) (*Condemnation, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyDisplayName
	}

	if restoreRoleID != nil && *restoreRoleID <= 0 {
		restoreRoleID = nil
	}

	var label *string
	if restoreRoleLabel != nil {
		if trimmed := strings.TrimSpace(*restoreRoleLabel); trimmed != "" {
			label = &trimmed
		}
	}

	return &Condemnation{
		GuildID:          guildID,
		DisplayName:      displayName,
		EventDate:        CivilDate(eventDate),
		RestoreRoleID:    restoreRoleID,
		RestoreRoleLabel: label,
	}, nil
}

// RoleDisplay returns the role to restore, preferring the role reference
func (c *Condemnation) RoleDisplay() RoleDisplay {
	return NewRoleDisplay(c.RestoreRoleID, c.RestoreRoleLabel)
}

// DueDate returns the date the condemnation reminder becomes due
func (c *Condemnation) DueDate() time.Time {
	return ReminderDueDate(c.EventDate)
}

// DueCondemnation is an unsent condemnation joined with its guild's delivery settings
type DueCondemnation struct {
	Condemnation
	ChannelID      int64  `db:"condemnation_channel_id"`
	NotifierRoleID *int64 `db:"notifier_role_id"`
}
