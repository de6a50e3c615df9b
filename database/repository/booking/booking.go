package bookingRepo

import (
	"context"
	"errors"
	"time"

	"littlenest/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStaleStatus is returned by UpdateStatus when the booking exists but its
// stored status no longer matches the expected one, meaning a concurrent
// transition won the race.
var ErrStaleStatus = errors.New("booking status changed concurrently")

// ErrNotFound is returned when a booking id matches no document.
var ErrNotFound = errors.New("booking not found")

// BookingRepository is the persistence boundary of the booking core.
type BookingRepository interface {
	// Create persists a new booking draft. The caller is responsible for
	// holding the provider booking lock across the availability re-check and
	// this insert.
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	// GetByUser and GetByProvider list bookings newest-first. An empty status
	// means all statuses.
	GetByUser(userID string, status models.BookingStatus) ([]models.Booking, error)
	GetByProvider(providerID string, status models.BookingStatus) ([]models.Booking, error)
	// FindConflicting returns bookings for the provider whose status still
	// occupies capacity and whose inclusive [startDate, endDate] range
	// overlaps the given range.
	FindConflicting(providerID, startDate, endDate string) ([]models.Booking, error)
	// UpdateStatus atomically moves a booking from the expected status to the
	// new one. The compare-and-set makes the transition precondition and the
	// write a single operation; ErrStaleStatus signals a lost race.
	UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error)
	UpdateNotes(id string, notes string) (*models.Booking, error)
}

// MongoBookingRepo implements BookingRepository on a bookings collection.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo builds a repository bound to the given database handle.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
