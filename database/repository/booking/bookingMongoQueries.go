package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"littlenest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByUser lists a user's bookings, newest first, optionally status-filtered.
func (r *MongoBookingRepo) GetByUser(userID string, status models.BookingStatus) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

// GetByProvider lists a provider's bookings, newest first, optionally
// status-filtered.
func (r *MongoBookingRepo) GetByProvider(providerID string, status models.BookingStatus) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"providerId": providerID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

// FindConflicting returns capacity-occupying bookings overlapping the given
// inclusive range. Two inclusive ranges overlap iff each starts on or before
// the other ends; dates are DateLayout strings, so the comparison is done
// directly in the query.
func (r *MongoBookingRepo) FindConflicting(providerID, startDate, endDate string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": providerID,
		"status":     bson.M{"$in": models.OccupyingStatuses},
		"startDate":  bson.M{"$lte": endDate},
		"endDate":    bson.M{"$gte": startDate},
	}
	return r.list(ctx, filter)
}
