package bookingRepo

import (
	"fmt"
	"time"

	"littlenest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID fetches a booking document by its ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// UpdateStatus performs a compare-and-set status transition. The filter pins
// the expected current status so two concurrent transitions cannot both
// succeed; exactly one matches, the other sees ErrStaleStatus.
func (r *MongoBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Distinguish a missing booking from a lost transition race.
		exists, cErr := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if cErr != nil {
			return nil, fmt.Errorf("failed to update booking %s status: %w", id, cErr)
		}
		if exists == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrStaleStatus
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return &updated, nil
}

// UpdateNotes replaces the notes field. Callers append to the prior value;
// the audit trail is never truncated here.
func (r *MongoBookingRepo) UpdateNotes(id string, notes string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"notes": notes, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s notes: %w", id, err)
	}
	return &updated, nil
}
