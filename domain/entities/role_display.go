package entities

import (
	"fmt"
	"strings"
)

// Placeholder is rendered wherever a value is absent
const Placeholder = "—"

// RoleDisplayKind tags which variant a RoleDisplay holds
type RoleDisplayKind int

const (
	RoleDisplayUnset RoleDisplayKind = iota
	RoleDisplayReference
	RoleDisplayLabel
)

// RoleDisplay is the role to restore after a condemnation: a role reference,
// a free-text label, or nothing
type RoleDisplay struct {
	kind   RoleDisplayKind
	roleID int64
	label  string
}

// RoleReference builds a RoleDisplay pointing at a guild role
func RoleReference(roleID int64) RoleDisplay {
	if roleID <= 0 {
		return RoleDisplay{}
	}
	return RoleDisplay{kind: RoleDisplayReference, roleID: roleID}
}

// RoleLabel builds a RoleDisplay from free text; blank text yields Unset
func RoleLabel(label string) RoleDisplay {
	label = strings.TrimSpace(label)
	if label == "" {
		return RoleDisplay{}
	}
	return RoleDisplay{kind: RoleDisplayLabel, label: label}
}

// NewRoleDisplay resolves stored columns; a role reference wins over a label
func NewRoleDisplay(roleID *int64, label *string) RoleDisplay {
	if roleID != nil && *roleID > 0 {
		return RoleReference(*roleID)
	}
	if label != nil {
		return RoleLabel(*label)
	}
	return RoleDisplay{}
}

// Kind returns the variant tag
func (r RoleDisplay) Kind() RoleDisplayKind {
	return r.kind
}

// RoleID returns the referenced role, if any
func (r RoleDisplay) RoleID() (int64, bool) {
	return r.roleID, r.kind == RoleDisplayReference
}

// Label returns the free-text label, if any
func (r RoleDisplay) Label() (string, bool) {
	return r.label, r.kind == RoleDisplayLabel
}

// IsSet reports whether any role information is present
func (r RoleDisplay) IsSet() bool {
	return r.kind != RoleDisplayUnset
}

// Render returns the string shown in messages: a role mention, the label, or a placeholder
func (r RoleDisplay) Render() string {
	switch r.kind {
	case RoleDisplayReference:
		return fmt.Sprintf("<@&%d>", r.roleID)
	case RoleDisplayLabel:
		return r.label
	default:
		return Placeholder
	}
}
