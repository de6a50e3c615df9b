package models

// DayStatus classifies one calendar day of a provider's schedule.
type DayStatus string

const (
	DayAvailable DayStatus = "available"
	DayLimited   DayStatus = "limited" // 30% or less of capacity remaining
	DayFull      DayStatus = "full"
	DayClosed    DayStatus = "closed"
)

// DayAvailability is the derived capacity state of one provider for one day.
// It is never persisted; it is recomputed from the current bookings on every
// query so it can never go stale.
type DayAvailability struct {
	Date           string    `json:"date"` // DateLayout
	TotalCapacity  int       `json:"totalCapacity"`
	BookedCount    int       `json:"bookedCount"`
	AvailableSlots int       `json:"availableSlots"` // max(0, TotalCapacity-BookedCount), 0 when closed
	Status         DayStatus `json:"status"`
}
