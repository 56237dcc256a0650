package common

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// MemberHasPermission checks the permissions Discord computed for the invoking member.
// Administrator implies every permission.
func MemberHasPermission(member *discordgo.Member, permission int64) bool {
	if member == nil {
		return false
	}
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return member.Permissions&permission == permission
}

// CanManageGuild checks the invoking member may change the guild's reminder settings
func CanManageGuild(i *discordgo.InteractionCreate) bool {
	return MemberHasPermission(i.Member, discordgo.PermissionManageGuild)
}

// IsUserAdmin checks if a user has administrator permissions in a guild
func IsUserAdmin(s *discordgo.Session, guildID, userID string) bool {
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		log.Errorf("Failed to get guild member: %v", err)
		return false
	}

	// Check each role for admin permissions
	for _, roleID := range member.Roles {
		role, err := s.State.Role(guildID, roleID)
		if err != nil {
			continue
		}
		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}

// IsInteractionAdmin checks the invoking member is an administrator,
// falling back to a role lookup when the interaction carries no permissions
func IsInteractionAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	if i.Member.User == nil {
		return false
	}
	return IsUserAdmin(s, i.GuildID, i.Member.User.ID)
}
