package testutil

import (
	"time"

	"revobot/domain/entities"
)

// Date returns a civil date
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateTestArrival creates an arrival with the PVM-OPTI profile
func CreateTestArrival(guildID int64, displayName string, eventDate time.Time) *entities.Arrival {
	return CreateTestArrivalWithProfile(guildID, displayName, eventDate, entities.ArrivalProfilePvmOpti)
}

// CreateTestArrivalWithProfile creates an arrival with a specific profile
func CreateTestArrivalWithProfile(guildID int64, displayName string, eventDate time.Time, profile entities.ArrivalProfile) *entities.Arrival {
	arrival, err := entities.NewArrival(guildID, displayName, eventDate, profile)
	if err != nil {
		panic(err)
	}
	return arrival
}

// CreateTestCondemnation creates a condemnation without a restore role
func CreateTestCondemnation(guildID int64, displayName string, eventDate time.Time) *entities.Condemnation {
	return CreateTestCondemnationWithRole(guildID, displayName, eventDate, nil, nil)
}

// CreateTestCondemnationWithRole creates a condemnation with a restore role reference and/or label
func CreateTestCondemnationWithRole(guildID int64, displayName string, eventDate time.Time, roleID *int64, label *string) *entities.Condemnation {
	condemnation, err := entities.NewCondemnation(guildID, displayName, eventDate, roleID, label)
	if err != nil {
		panic(err)
	}
	return condemnation
}

// Int64Ptr returns a pointer to v
func Int64Ptr(v int64) *int64 {
	return &v
}

// StringPtr returns a pointer to v
func StringPtr(v string) *string {
	return &v
}
