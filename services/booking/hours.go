package booking

import (
	"strings"
	"time"

	"littlenest/models"
)

// scheduleFor returns the operating hours entry for the given weekday, or nil
// when none exists. Weekday names are matched case-insensitively.
func scheduleFor(day time.Weekday, hours []models.DaySchedule) *models.DaySchedule {
	name := strings.ToLower(day.String())
	for i := range hours {
		if strings.ToLower(hours[i].Day) == name {
			return &hours[i]
		}
	}
	return nil
}

// IsOpen resolves whether a provider is open on the given weekday.
// A day is closed when no schedule entry exists for it, when the entry carries
// the CLOSED sentinel, or when the provider closes weekends and the day is a
// Saturday or Sunday. The weekend rule is per provider data, not a global
// policy: a provider without WeekendsClosed set honors its weekend entries.
func IsOpen(day time.Weekday, p *models.Provider) bool {
	if p.WeekendsClosed && (day == time.Saturday || day == time.Sunday) {
		return false
	}
	entry := scheduleFor(day, p.OperatingHours)
	if entry == nil {
		return false
	}
	return strings.ToUpper(entry.Open) != models.ClosedSentinel
}

// OpenHours returns the open and close times ("HH:MM") for the given weekday.
// ok is false when the day is closed. Close is always >= Open; overnight
// shifts are not supported.
func OpenHours(day time.Weekday, p *models.Provider) (open, close string, ok bool) {
	if !IsOpen(day, p) {
		return "", "", false
	}
	entry := scheduleFor(day, p.OperatingHours)
	return entry.Open, entry.Close, true
}
