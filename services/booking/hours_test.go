package booking

import (
	"testing"
	"time"

	"littlenest/models"

	"github.com/stretchr/testify/assert"
)

func weekdayProvider() *models.Provider {
	return &models.Provider{
		ID:       "prov-1",
		Capacity: 10,
		OperatingHours: []models.DaySchedule{
			{Day: "monday", Open: "07:30", Close: "18:00"},
			{Day: "tuesday", Open: "07:30", Close: "18:00"},
			{Day: "wednesday", Open: "07:30", Close: "18:00"},
			{Day: "thursday", Open: "07:30", Close: "18:00"},
			{Day: "friday", Open: "07:30", Close: "16:00"},
			{Day: "sunday", Open: models.ClosedSentinel, Close: ""},
		},
		Availability: true,
		IsActive:     true,
	}
}

func TestIsOpen(t *testing.T) {
	p := weekdayProvider()

	tests := []struct {
		name string
		day  time.Weekday
		want bool
	}{
		{"scheduled weekday", time.Monday, true},
		{"no schedule entry means closed", time.Saturday, false},
		{"explicit CLOSED sentinel", time.Sunday, false},
		{"friday open", time.Friday, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpen(tt.day, p))
		})
	}
}

func TestWeekendOverrideBeatsSchedule(t *testing.T) {
	p := weekdayProvider()
	p.OperatingHours = append(p.OperatingHours, models.DaySchedule{Day: "saturday", Open: "09:00", Close: "13:00"})

	assert.True(t, IsOpen(time.Saturday, p), "weekend entry honored without the override")

	p.WeekendsClosed = true
	assert.False(t, IsOpen(time.Saturday, p), "override closes a scheduled saturday")
	assert.True(t, IsOpen(time.Monday, p), "override leaves weekdays alone")
}

func TestOpenHours(t *testing.T) {
	p := weekdayProvider()

	open, close, ok := OpenHours(time.Friday, p)
	assert.True(t, ok)
	assert.Equal(t, "07:30", open)
	assert.Equal(t, "16:00", close)

	_, _, ok = OpenHours(time.Sunday, p)
	assert.False(t, ok)
}

func TestScheduleForMatchesCaseInsensitively(t *testing.T) {
	hours := []models.DaySchedule{{Day: "Monday", Open: "08:00", Close: "17:00"}}
	entry := scheduleFor(time.Monday, hours)
	assert.NotNil(t, entry)
	assert.Equal(t, "08:00", entry.Open)
}
