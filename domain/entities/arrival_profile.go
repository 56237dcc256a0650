package entities

import (
	"fmt"
	"strings"
)

// ArrivalProfile is the player profile recorded with an arrival
type ArrivalProfile string

const (
	ArrivalProfilePvmOpti    ArrivalProfile = "PVM-OPTI"
	ArrivalProfilePvmBL      ArrivalProfile = "PVM-BL"
	ArrivalProfilePvpOpti    ArrivalProfile = "PVP-OPTI"
	ArrivalProfilePvpNotOpti ArrivalProfile = "PVP-NOT-OPTI"
)

var arrivalProfileLabels = map[ArrivalProfile]string{
	ArrivalProfilePvmOpti:    "PVM OPTI",
	ArrivalProfilePvmBL:      "PVM BL",
	ArrivalProfilePvpOpti:    "PVP OPTI",
	ArrivalProfilePvpNotOpti: "PVP PAS OPTI",
}

// AllArrivalProfiles returns every profile in display order
func AllArrivalProfiles() []ArrivalProfile {
	return []ArrivalProfile{
		ArrivalProfilePvmOpti,
		ArrivalProfilePvmBL,
		ArrivalProfilePvpOpti,
		ArrivalProfilePvpNotOpti,
	}
}

// ParseArrivalProfile accepts either the stored tag or its display label, case-insensitively
func ParseArrivalProfile(value string) (ArrivalProfile, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for _, profile := range AllArrivalProfiles() {
		if normalized == string(profile) || normalized == arrivalProfileLabels[profile] {
			return profile, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidProfile, value)
}

// IsValid checks the profile belongs to the enumeration
func (p ArrivalProfile) IsValid() bool {
	_, ok := arrivalProfileLabels[p]
	return ok
}

// Label returns the human readable label, or "—" for an unknown profile
func (p ArrivalProfile) Label() string {
	if label, ok := arrivalProfileLabels[p]; ok {
		return label
	}
	return Placeholder
}
