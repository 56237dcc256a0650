package application

import (
	"context"

	"revobot/application/dto"
)

// ReminderPoster defines the interface for delivering reminders to Discord.
// Each call resolves the target channel and sends the message; any failure
// in either step is returned so the item stays pending.
type ReminderPoster interface {
	// PostArrivalReminder posts an arrival reminder to its configured channel
	PostArrivalReminder(ctx context.Context, reminder dto.ArrivalReminderDTO) error

	// PostCondemnationReminder posts a condemnation reminder to its configured channel
	PostCondemnationReminder(ctx context.Context, reminder dto.CondemnationReminderDTO) error
}
