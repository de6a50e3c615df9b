package models

import (
	"time"
)

// DateLayout is the canonical calendar-day format used across the booking core.
// Dates are stored as strings in this layout; lexicographic order equals
// chronological order.
const DateLayout = "2006-01-02"

// ClosedSentinel marks a schedule entry whose day is closed.
const ClosedSentinel = "CLOSED"

// DaySchedule is one weekday's operating hours. Open and Close are same-day
// "HH:MM" strings; Open == ClosedSentinel means the day is closed regardless
// of Close. Each weekday appears at most once in a provider's schedule.
type DaySchedule struct {
	Day   string `bson:"day" json:"day"`     // lowercase weekday name, e.g. "monday"
	Open  string `bson:"open" json:"open"`   // e.g. "07:30", or ClosedSentinel
	Close string `bson:"close" json:"close"` // e.g. "18:00"
}

// Provider represents a childcare facility. The booking core reads it; profile
// management lives elsewhere.
type Provider struct {
	ID             string        `bson:"id" json:"id"`
	Name           string        `bson:"name" json:"name"`
	Email          string        `bson:"email" json:"email,omitempty"`
	PhoneNumber    string        `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Address        string        `bson:"address" json:"address,omitempty"`
	Rating         float64       `bson:"rating" json:"rating,omitempty"`
	Capacity       int           `bson:"capacity" json:"capacity"`                         // max concurrent children per day
	OperatingHours []DaySchedule `bson:"operatingHours" json:"operatingHours,omitempty"`   // at most one entry per weekday
	WeekendsClosed bool          `bson:"weekendsClosed" json:"weekendsClosed"`             // closes Sat/Sun even when scheduled
	Availability   bool          `bson:"availability" json:"availability"`                 // master switch set by the provider
	IsActive       bool          `bson:"isActive" json:"isActive"`                         // set by platform administration
	Price          float64       `bson:"price" json:"price"`                               // per child per day
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt      time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// AcceptingBookings reports whether the provider can take new bookings at all.
func (p *Provider) AcceptingBookings() bool {
	return p.Availability && p.IsActive
}
