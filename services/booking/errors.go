package booking

import (
	"fmt"
	"strings"

	"littlenest/models"
)

// ProviderNotFoundError indicates the requested provider does not exist.
type ProviderNotFoundError struct {
	ProviderID string
}

func (e ProviderNotFoundError) Error() string {
	return fmt.Sprintf("provider %s not found", e.ProviderID)
}

// ProviderUnavailableError indicates the provider exists but is not accepting
// bookings (master availability switch off or account deactivated).
type ProviderUnavailableError struct {
	ProviderID string
}

func (e ProviderUnavailableError) Error() string {
	return fmt.Sprintf("provider %s is not accepting bookings", e.ProviderID)
}

// ChildNotFoundError indicates one or more referenced children do not exist.
type ChildNotFoundError struct {
	MissingIDs []string
}

func (e ChildNotFoundError) Error() string {
	return fmt.Sprintf("children not found: %s", strings.Join(e.MissingIDs, ", "))
}

// ChildrenMismatchError indicates the declared children count disagrees with
// the children id list, or the list is empty.
type ChildrenMismatchError struct {
	Declared int
	Listed   int
}

func (e ChildrenMismatchError) Error() string {
	return fmt.Sprintf("children count %d does not match %d listed children", e.Declared, e.Listed)
}

// InvalidDateRangeError indicates a malformed or reversed date range.
type InvalidDateRangeError struct {
	StartDate string
	EndDate   string
	Reason    string
}

func (e InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range [%s, %s]: %s", e.StartDate, e.EndDate, e.Reason)
}

// CapacityConflictError indicates at least one day in the requested range
// cannot take the requested number of children. UnavailableDates is
// chronological so callers can present alternatives.
type CapacityConflictError struct {
	ProviderID       string
	UnavailableDates []string
}

func (e CapacityConflictError) Error() string {
	return fmt.Sprintf("provider %s has no capacity on: %s", e.ProviderID, strings.Join(e.UnavailableDates, ", "))
}

// BookingNotFoundError indicates the booking does not exist.
type BookingNotFoundError struct {
	BookingID string
}

func (e BookingNotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}

// IllegalTransitionError indicates a status transition outside the lifecycle
// table. Carries both statuses so callers can explain why the action is blocked.
type IllegalTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal booking transition from %s to %s", e.From, e.To)
}

// ConcurrencyConflictError indicates a simultaneous write changed the booking
// or the provider's occupancy between our read and our write. Safe to retry
// once with a fresh read; repeated failures should surface to the caller.
type ConcurrencyConflictError struct {
	BookingID  string
	ProviderID string
}

func (e ConcurrencyConflictError) Error() string {
	if e.BookingID != "" {
		return fmt.Sprintf("booking %s was modified concurrently", e.BookingID)
	}
	return fmt.Sprintf("concurrent booking activity for provider %s, retry", e.ProviderID)
}
