package booking

import (
	"fmt"

	"littlenest/models"
)

// allowedTransitions is the booking lifecycle table. Completed and cancelled
// are terminal and have no outgoing edges.
var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusActive, models.StatusCancelled},
	models.StatusActive:    {models.StatusCompleted, models.StatusCancelled},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
}

// CanTransition reports whether the lifecycle table permits moving a booking
// from one status to another.
func CanTransition(from, to models.BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// appendCancellationNote appends a cancellation audit entry to the booking's
// notes. Prior notes are preserved; the trail is append-only.
func appendCancellationNote(notes, reason string, admin bool) string {
	prefix := "Cancellation reason"
	if admin {
		prefix = "Admin cancellation reason"
	}
	entry := fmt.Sprintf("%s: %s", prefix, reason)
	if notes == "" {
		return entry
	}
	return notes + "\n" + entry
}
