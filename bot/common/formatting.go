package common

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"revobot/domain/entities"
)

// ParseID converts a Discord snowflake string to int64
func ParseID(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// FormatID converts an int64 snowflake back to the string form discordgo expects
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ChannelMention renders a channel mention, or the placeholder when unset
func ChannelMention(channelID *int64) string {
	if channelID == nil || *channelID <= 0 {
		return entities.Placeholder
	}
	return fmt.Sprintf("<#%d>", *channelID)
}

// RoleMention renders a role mention, or the placeholder when unset
func RoleMention(roleID *int64) string {
	if roleID == nil || *roleID <= 0 {
		return entities.Placeholder
	}
	return fmt.Sprintf("<@&%d>", *roleID)
}

// RolePing returns the message content that pings the notifier role; empty when unset
func RolePing(roleID *int64) string {
	if roleID == nil || *roleID <= 0 {
		return ""
	}
	return fmt.Sprintf("<@&%d>", *roleID)
}

// Truncate cuts s to at most limit bytes without splitting a rune
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}
