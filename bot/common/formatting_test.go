package common

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestMentions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<#42>", ChannelMention(int64Ptr(42)))
	assert.Equal(t, "—", ChannelMention(nil))
	assert.Equal(t, "<@&7>", RoleMention(int64Ptr(7)))
	assert.Equal(t, "—", RoleMention(int64Ptr(0)))
	assert.Equal(t, "<@&7>", RolePing(int64Ptr(7)))
	assert.Equal(t, "", RolePing(nil))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "short string untouched", input: "abc", limit: 10, want: "abc"},
		{name: "ascii cut", input: "abcdef", limit: 4, want: "abcd"},
		// "é" is two bytes; cutting inside it backs off to the rune start
		{name: "multibyte rune not split", input: "aé", limit: 2, want: "a"},
		{name: "exact limit", input: "abcd", limit: 4, want: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Truncate(tt.input, tt.limit))
		})
	}
}

func TestMemberHasPermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		member *discordgo.Member
		want   bool
	}{
		{name: "nil member", member: nil, want: false},
		{name: "no permissions", member: &discordgo.Member{}, want: false},
		{name: "manage guild", member: &discordgo.Member{Permissions: discordgo.PermissionManageGuild}, want: true},
		{name: "administrator implies all", member: &discordgo.Member{Permissions: discordgo.PermissionAdministrator}, want: true},
		{name: "unrelated permission", member: &discordgo.Member{Permissions: discordgo.PermissionSendMessages}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MemberHasPermission(tt.member, discordgo.PermissionManageGuild))
		})
	}
}
