package bookingRepo

import (
	"context"
	"fmt"

	"stayhaven/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfAvailable inserts the booking only if no active booking for the
// same room overlaps its date range. Check and insert run in one session
// transaction, closing the window where two concurrent requests both pass
// the conflict check.
func (r *MongoBookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := conflictFilter(booking.RoomID, booking.CheckInDate, booking.CheckOutDate)
		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrDateConflict
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrDateConflict {
			return ErrDateConflict
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
