package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoleDisplay(t *testing.T) {
	t.Parallel()

	roleID := int64(555)
	zero := int64(0)
	label := "Scout"
	blank := "   "

	tests := []struct {
		name       string
		roleID     *int64
		label      *string
		wantKind   RoleDisplayKind
		wantRender string
	}{
		{name: "reference only", roleID: &roleID, wantKind: RoleDisplayReference, wantRender: "<@&555>"},
		{name: "reference wins over label", roleID: &roleID, label: &label, wantKind: RoleDisplayReference, wantRender: "<@&555>"},
		{name: "label only", label: &label, wantKind: RoleDisplayLabel, wantRender: "Scout"},
		{name: "zero reference falls back to label", roleID: &zero, label: &label, wantKind: RoleDisplayLabel, wantRender: "Scout"},
		{name: "blank label is unset", label: &blank, wantKind: RoleDisplayUnset, wantRender: Placeholder},
		{name: "nothing", wantKind: RoleDisplayUnset, wantRender: Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			display := NewRoleDisplay(tt.roleID, tt.label)
			assert.Equal(t, tt.wantKind, display.Kind())
			assert.Equal(t, tt.wantRender, display.Render())
			assert.Equal(t, tt.wantKind != RoleDisplayUnset, display.IsSet())
		})
	}
}

func TestRoleDisplay_Accessors(t *testing.T) {
	t.Parallel()

	id, ok := RoleReference(42).RoleID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = RoleReference(42).Label()
	assert.False(t, ok)

	text, ok := RoleLabel(" Membre ").Label()
	assert.True(t, ok)
	assert.Equal(t, "Membre", text)

	assert.Equal(t, RoleDisplayUnset, RoleReference(-1).Kind())
}
