package booking

import (
	"fmt"
	"time"

	bookingRepo "littlenest/database/repository/booking"
	"littlenest/models"

	"go.uber.org/zap"
)

// AvailabilityEngine computes derived per-day capacity state for a provider.
// Results are always recomputed from the current bookings; nothing is cached,
// so a result can never be stale.
type AvailabilityEngine interface {
	// ComputeRangeAvailability returns one DayAvailability per calendar day in
	// the inclusive [startDate, endDate] range, in chronological order.
	// excludeBookingID, when non-empty, leaves that booking out of the
	// occupancy count; it is used when re-validating an existing booking so it
	// does not conflict with itself.
	ComputeRangeAvailability(provider *models.Provider, startDate, endDate, excludeBookingID string) ([]models.DayAvailability, error)
}

// DefaultAvailabilityEngine is the production implementation.
type DefaultAvailabilityEngine struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

// limitedThreshold is the fraction of capacity at or below which an open day
// is reported as limited rather than available.
const limitedThreshold = 0.3

// parseRange validates and parses an inclusive date range.
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, InvalidDateRangeError{StartDate: startDate, EndDate: endDate, Reason: "start date is not a valid YYYY-MM-DD date"}
	}
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, InvalidDateRangeError{StartDate: startDate, EndDate: endDate, Reason: "end date is not a valid YYYY-MM-DD date"}
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, InvalidDateRangeError{StartDate: startDate, EndDate: endDate, Reason: "start date is after end date"}
	}
	return start, end, nil
}

// ComputeRangeAvailability aggregates occupying bookings into per-day counts
// and derives each day's status from the provider's capacity and schedule.
func (e *DefaultAvailabilityEngine) ComputeRangeAvailability(provider *models.Provider, startDate, endDate, excludeBookingID string) ([]models.DayAvailability, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	// 1. Fetch every booking still occupying capacity whose range overlaps the
	// query range. Completed and cancelled bookings are filtered out by the
	// repository query.
	conflicts, err := e.Repo.FindConflicting(provider.ID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch occupying bookings for provider %s: %w", provider.ID, err)
	}

	// 2. Expand each booking day by day over the intersection with the query
	// range. Multi-day bookings occupy every covered day, not just endpoints.
	occupancy := make(map[string]int)
	for _, b := range conflicts {
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		bStart, bEnd, err := parseRange(b.StartDate, b.EndDate)
		if err != nil {
			e.Logger.Warn("skipping booking with malformed date range",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		if bStart.Before(start) {
			bStart = start
		}
		if bEnd.After(end) {
			bEnd = end
		}
		for d := bStart; !d.After(bEnd); d = d.AddDate(0, 0, 1) {
			occupancy[d.Format(models.DateLayout)] += b.ChildrenCount
		}
	}

	// 3. Derive each day's status.
	var days []models.DayAvailability
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(models.DateLayout)
		day := models.DayAvailability{
			Date:          dateStr,
			TotalCapacity: provider.Capacity,
			BookedCount:   occupancy[dateStr],
		}

		if !IsOpen(d.Weekday(), provider) {
			day.AvailableSlots = 0
			day.Status = models.DayClosed
			days = append(days, day)
			continue
		}

		remaining := provider.Capacity - day.BookedCount
		if remaining < 0 {
			remaining = 0
		}
		day.AvailableSlots = remaining
		switch {
		case remaining == 0:
			day.Status = models.DayFull
		case float64(remaining) <= limitedThreshold*float64(provider.Capacity):
			day.Status = models.DayLimited
		default:
			day.Status = models.DayAvailable
		}
		days = append(days, day)
	}

	return days, nil
}
