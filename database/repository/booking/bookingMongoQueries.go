package bookingRepo

import (
	"fmt"
	"time"

	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activeStatuses are the statuses that count toward date conflicts.
var activeStatuses = bson.A{models.BookingPending, models.BookingConfirmed}

// conflictFilter builds the inclusive-boundary overlap filter:
// existing.checkIn <= new.checkOut AND existing.checkOut >= new.checkIn.
// Must stay in lockstep with models.Booking.Overlaps.
func conflictFilter(roomID string, checkIn, checkOut time.Time) bson.M {
	filter := bson.M{
		"status":       bson.M{"$in": activeStatuses},
		"checkInDate":  bson.M{"$lte": checkOut},
		"checkOutDate": bson.M{"$gte": checkIn},
	}
	if roomID != "" {
		filter["roomId"] = roomID
	}
	return filter
}

// List returns one reverse-chronological page of bookings plus the total count.
func (r *MongoBookingRepo) List(userID string, page models.PageRequest) ([]models.Booking, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if userID != "" {
		filter["userId"] = userID
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, total, nil
}

// FindConflicting returns any active booking for the room overlapping the range.
func (r *MongoBookingRepo) FindConflicting(roomID string, checkIn, checkOut time.Time) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, conflictFilter(roomID, checkIn, checkOut)).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query conflicting bookings for room %s: %w", roomID, err)
	}
	return &booking, nil
}

// ConflictingRoomIDs returns ids of all rooms with at least one active
// booking overlapping the range. Used by the availability search to exclude
// booked rooms in a single query instead of one conflict probe per room.
func (r *MongoBookingRepo) ConflictingRoomIDs(checkIn, checkOut time.Time) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "roomId", conflictFilter("", checkIn, checkOut))
	if err != nil {
		return nil, fmt.Errorf("failed to collect conflicting room ids: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// CountActiveForRoom counts pending/confirmed bookings referencing a room.
func (r *MongoBookingRepo) CountActiveForRoom(roomID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"roomId": roomID,
		"status": bson.M{"$in": activeStatuses},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings for room %s: %w", roomID, err)
	}
	return count, nil
}

// CountAll counts every booking document.
func (r *MongoBookingRepo) CountAll() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// CountActive counts pending/confirmed bookings across all rooms.
func (r *MongoBookingRepo) CountActive() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"status": bson.M{"$in": activeStatuses}})
	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}
	return count, nil
}

// CompleteExpired moves confirmed bookings with a past checkout to completed.
func (r *MongoBookingRepo) CompleteExpired(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":       models.BookingConfirmed,
		"checkOutDate": bson.M{"$lt": now},
	}
	update := bson.M{"$set": bson.M{"status": models.BookingCompleted, "updatedAt": now}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete expired bookings: %w", err)
	}
	return result.ModifiedCount, nil
}
