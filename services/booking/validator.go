package booking

import (
	"fmt"

	"littlenest/models"
)

// AvailabilityResult is the outcome of a capacity check over a date range.
type AvailabilityResult struct {
	Available        bool     `json:"available"`
	UnavailableDates []string `json:"unavailableDates,omitempty"` // chronological
	Reason           string   `json:"reason,omitempty"`
}

// checkRange walks the computed days and collects every date that cannot take
// childrenCount more children: closed days always conflict, open days conflict
// when fewer slots remain than requested.
//
// Callers must have verified the provider's master availability flags first;
// this check only answers the capacity question. The result is authoritative
// only at the instant of the check; CreateBooking repeats it under the
// provider booking lock before writing.
func checkRange(days []models.DayAvailability, childrenCount int) AvailabilityResult {
	var unavailable []string
	closedDays := 0
	for _, day := range days {
		if day.Status == models.DayClosed {
			unavailable = append(unavailable, day.Date)
			closedDays++
			continue
		}
		if day.AvailableSlots < childrenCount {
			unavailable = append(unavailable, day.Date)
		}
	}

	result := AvailabilityResult{
		Available:        len(unavailable) == 0,
		UnavailableDates: unavailable,
	}
	if !result.Available {
		if closedDays == len(unavailable) {
			result.Reason = "provider is closed on the requested dates"
		} else {
			result.Reason = fmt.Sprintf("not enough capacity for %d children on %d of the requested days", childrenCount, len(unavailable))
		}
	}
	return result
}
