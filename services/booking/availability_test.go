package booking

import (
	"testing"

	"littlenest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The test week: 2026-09-07 is a Monday, 2026-09-13 the following Sunday.
const (
	monday    = "2026-09-07"
	tuesday   = "2026-09-08"
	wednesday = "2026-09-09"
	saturday  = "2026-09-12"
	sunday    = "2026-09-13"
)

func newTestEngine(repo *fakeBookingRepo) *DefaultAvailabilityEngine {
	return &DefaultAvailabilityEngine{Repo: repo, Logger: zap.NewNop()}
}

func seedBooking(repo *fakeBookingRepo, id string, status models.BookingStatus, start, end string, children int) {
	_ = repo.Create(&models.Booking{
		ID:            id,
		ProviderID:    "prov-1",
		ChildrenCount: children,
		StartDate:     start,
		EndDate:       end,
		Status:        status,
	})
}

func TestComputeRangeAvailabilityExpandsMultiDayBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	engine := newTestEngine(repo)
	p := weekdayProvider()

	seedBooking(repo, "b1", models.StatusConfirmed, monday, wednesday, 3)

	days, err := engine.ComputeRangeAvailability(p, monday, wednesday, "")
	require.NoError(t, err)
	require.Len(t, days, 3)

	for i, day := range days {
		assert.Equal(t, 3, day.BookedCount, "day %d must carry the full occupancy, not just endpoints", i)
		assert.Equal(t, 7, day.AvailableSlots)
		assert.Equal(t, models.DayAvailable, day.Status)
	}
	assert.Equal(t, []string{monday, tuesday, wednesday}, []string{days[0].Date, days[1].Date, days[2].Date})
}

func TestComputeRangeAvailabilityClosedDays(t *testing.T) {
	repo := newFakeBookingRepo()
	engine := newTestEngine(repo)
	p := weekdayProvider() // no saturday entry, sunday carries the CLOSED sentinel

	days, err := engine.ComputeRangeAvailability(p, saturday, sunday, "")
	require.NoError(t, err)
	require.Len(t, days, 2)

	for _, day := range days {
		assert.Equal(t, models.DayClosed, day.Status)
		assert.Equal(t, 0, day.AvailableSlots)
	}
}

func TestClosedDayStaysClosedRegardlessOfOccupancy(t *testing.T) {
	repo := newFakeBookingRepo()
	engine := newTestEngine(repo)
	p := weekdayProvider()

	// Explicit "CLOSED" sunday with capacity otherwise free.
	days, err := engine.ComputeRangeAvailability(p, sunday, sunday, "")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, models.DayClosed, days[0].Status)
	assert.Equal(t, 0, days[0].AvailableSlots)
}

func TestTerminalBookingsDoNotOccupy(t *testing.T) {
	repo := newFakeBookingRepo()
	engine := newTestEngine(repo)
	p := weekdayProvider()

	seedBooking(repo, "b1", models.StatusCancelled, monday, monday, 10)
	seedBooking(repo, "b2", models.StatusCompleted, monday, monday, 10)

	days, err := engine.ComputeRangeAvailability(p, monday, monday, "")
	require.NoError(t, err)
	assert.Equal(t, 0, days[0].BookedCount)
	assert.Equal(t, models.DayAvailable, days[0].Status)
}

func TestDayStatusThresholds(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		booked   int
		want     models.DayStatus
		slots    int
	}{
		{"plenty remaining", 10, 3, models.DayAvailable, 7},
		{"just above limited", 10, 6, models.DayAvailable, 4},
		{"exactly 30 percent remaining is limited", 10, 7, models.DayLimited, 3},
		{"below threshold", 10, 9, models.DayLimited, 1},
		{"exhausted", 10, 10, models.DayFull, 0},
		{"overbooked clamps to zero", 10, 14, models.DayFull, 0},
		{"zero capacity is always full", 0, 0, models.DayFull, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo()
			engine := newTestEngine(repo)
			p := weekdayProvider()
			p.Capacity = tt.capacity
			if tt.booked > 0 {
				seedBooking(repo, "b1", models.StatusActive, monday, monday, tt.booked)
			}

			days, err := engine.ComputeRangeAvailability(p, monday, monday, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, days[0].Status)
			assert.Equal(t, tt.slots, days[0].AvailableSlots)
			assert.Equal(t, tt.capacity, days[0].TotalCapacity)
		})
	}
}

func TestComputeRangeAvailabilityIsIdempotent(t *testing.T) {
	repo := newFakeBookingRepo()
	engine := newTestEngine(repo)
	p := weekdayProvider()
	seedBooking(repo, "b1", models.StatusPending, monday, wednesday, 2)

	first, err := engine.ComputeRangeAvailability(p, monday, sunday, "")
	require.NoError(t, err)
	second, err := engine.ComputeRangeAvailability(p, monday, sunday, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeRangeAvailabilityExcludesBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	engine := newTestEngine(repo)
	p := weekdayProvider()
	seedBooking(repo, "b1", models.StatusConfirmed, monday, monday, 4)

	days, err := engine.ComputeRangeAvailability(p, monday, monday, "b1")
	require.NoError(t, err)
	assert.Equal(t, 0, days[0].BookedCount, "the excluded booking must not count against itself")
}

func TestComputeRangeAvailabilityRejectsBadRanges(t *testing.T) {
	repo := newFakeBookingRepo()
	engine := newTestEngine(repo)
	p := weekdayProvider()

	_, err := engine.ComputeRangeAvailability(p, wednesday, monday, "")
	assert.ErrorAs(t, err, &InvalidDateRangeError{})

	_, err = engine.ComputeRangeAvailability(p, "07/09/2026", sunday, "")
	assert.ErrorAs(t, err, &InvalidDateRangeError{})
}
