package offerRepo

import (
	"context"
	"fmt"
	"time"

	"stayhaven/database"
	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OfferRepository defines persistence operations for discount offers.
// Lookups return (nil, nil) when no document matches.
type OfferRepository interface {
	Create(offer *models.Offer) error
	GetByID(id string) (*models.Offer, error)
	Update(offer *models.Offer) error
	Delete(id string) error

	// List returns one reverse-chronological page. When active is non-nil
	// it filters by whether the offer window covers the current time.
	List(active *bool, page models.PageRequest) ([]models.Offer, int64, error)

	// DeactivateExpired clears the active flag on offers past their window.
	DeactivateExpired(now time.Time) (int64, error)
}

// MongoOfferRepo implements OfferRepository using MongoDB.
type MongoOfferRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferRepo creates a new instance of OfferRepository using MongoDB.
func NewMongoOfferRepo() OfferRepository {
	repo := &MongoOfferRepo{coll: database.Collection("offers")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOfferRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "endDate", Value: 1}, {Key: "isActive", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new offer document.
func (r *MongoOfferRepo) Create(offer *models.Offer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	offer.CreatedAt = now
	offer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, offer); err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// GetByID retrieves an offer by its unique ID.
func (r *MongoOfferRepo) GetByID(id string) (*models.Offer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var offer models.Offer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&offer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch offer with id %s: %w", id, err)
	}
	return &offer, nil
}

// Update modifies an existing offer document.
func (r *MongoOfferRepo) Update(offer *models.Offer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	offer.UpdatedAt = time.Now().UTC()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": offer.ID}, bson.M{"$set": offer})
	if err != nil {
		return fmt.Errorf("failed to update offer with id %s: %w", offer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("offer with id %s not found", offer.ID)
	}
	return nil
}

// Delete removes an offer document by its ID.
func (r *MongoOfferRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete offer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("offer with id %s not found", id)
	}
	return nil
}

// List returns one reverse-chronological page of offers plus the total count.
func (r *MongoOfferRepo) List(active *bool, page models.PageRequest) ([]models.Offer, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if active != nil {
		now := time.Now().UTC()
		if *active {
			query["$and"] = bson.A{
				bson.M{"startDate": bson.M{"$lte": now}},
				bson.M{"endDate": bson.M{"$gte": now}},
				bson.M{"isActive": true},
			}
		} else {
			query["$or"] = bson.A{
				bson.M{"startDate": bson.M{"$gt": now}},
				bson.M{"endDate": bson.M{"$lt": now}},
				bson.M{"isActive": false},
			}
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count offers: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list offers: %w", err)
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, 0, fmt.Errorf("failed to decode offers: %w", err)
	}
	return offers, total, nil
}

// DeactivateExpired clears the active flag on offers past their window.
func (r *MongoOfferRepo) DeactivateExpired(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"isActive": true, "endDate": bson.M{"$lt": now}}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": now}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired offers: %w", err)
	}
	return result.ModifiedCount, nil
}
