package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// OccupyingStatuses are the statuses that count against provider capacity.
// Completed and cancelled bookings never occupy slots.
var OccupyingStatuses = []BookingStatus{StatusPending, StatusConfirmed, StatusActive}

// IsTerminal reports whether the status admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Occupies reports whether a booking in this status counts against capacity.
func (s BookingStatus) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusActive
}

// EmergencyContact is the person a provider calls when a parent is unreachable.
type EmergencyContact struct {
	Name             string `bson:"name" json:"name"`
	Phone            string `bson:"phone" json:"phone"`
	Relationship     string `bson:"relationship" json:"relationship,omitempty"`
	PickupAuthorized bool   `bson:"pickupAuthorized" json:"pickupAuthorized"`
}

// Booking represents a reservation of provider capacity for a set of children
// over an inclusive calendar-day range.
type Booking struct {
	ID               string            `bson:"id" json:"id"`
	UserID           string            `bson:"userId" json:"userId"`
	ProviderID       string            `bson:"providerId" json:"providerId"`
	ChildrenIDs      []string          `bson:"childrenIds" json:"childrenIds"`
	ChildrenCount    int               `bson:"childrenCount" json:"childrenCount"` // always len(ChildrenIDs)
	StartDate        string            `bson:"startDate" json:"startDate"`         // DateLayout, inclusive
	EndDate          string            `bson:"endDate" json:"endDate"`             // DateLayout, inclusive
	Status           BookingStatus     `bson:"status" json:"status"`
	TotalAmount      float64           `bson:"totalAmount" json:"totalAmount"` // price at creation time, never re-derived
	PaymentMethod    string            `bson:"paymentMethod" json:"paymentMethod,omitempty"`
	PaymentStatus    string            `bson:"paymentStatus" json:"paymentStatus,omitempty"`
	EmergencyContact *EmergencyContact `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	Notes            string            `bson:"notes" json:"notes,omitempty"` // append-only audit trail
	CreatedAt        time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time         `bson:"updatedAt" json:"updatedAt"`
}
