package booking

import (
	"time"

	"littlenest/models"
)

// inclusiveDayCount returns the number of calendar days covered by the
// inclusive [start, end] range. A one-day booking counts as 1.
func inclusiveDayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// CalculateTotalAmount derives the booking total from the provider's daily
// per-child price. The result is captured on the booking at creation time and
// never re-derived afterwards; it is a historical price.
func CalculateTotalAmount(provider *models.Provider, start, end time.Time, childrenCount int) float64 {
	return provider.Price * float64(inclusiveDayCount(start, end)) * float64(childrenCount)
}
