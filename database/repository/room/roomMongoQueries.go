package roomRepo

import (
	"fmt"
	"time"

	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildListFilter translates a RoomFilter into a Mongo query document.
func buildListFilter(f models.RoomFilter) bson.M {
	query := bson.M{}

	if f.Search != "" {
		regex := primitive.Regex{Pattern: f.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"roomType": regex},
			bson.M{"hotel.name": regex},
			bson.M{"hotel.city": regex},
		}
	}
	if f.MinPrice > 0 || f.MaxPrice > 0 {
		price := bson.M{}
		if f.MinPrice > 0 {
			price["$gte"] = f.MinPrice
		}
		if f.MaxPrice > 0 {
			price["$lte"] = f.MaxPrice
		}
		query["pricePerNight"] = price
	}
	if f.RoomType != "" {
		query["roomType"] = f.RoomType
	}
	if len(f.Amenities) > 0 {
		query["amenities"] = bson.M{"$all": f.Amenities}
	}
	return query
}

// List returns one page of rooms matching the filter plus the total count.
func (r *MongoRoomRepo) List(filter models.RoomFilter, page models.PageRequest) ([]models.Room, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := buildListFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	sortField := "createdAt"
	sortOrder := -1
	if filter.SortField != "" {
		sortField = filter.SortField
		if filter.SortAsc {
			sortOrder = 1
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortOrder}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, 0, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, total, nil
}

// ListExcluding returns rooms not in the excluded id set, optionally
// restricted to one room type.
func (r *MongoRoomRepo) ListExcluding(roomType models.RoomType, excludedIDs []string) ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if roomType != "" {
		query["roomType"] = roomType
	}
	if len(excludedIDs) > 0 {
		query["id"] = bson.M{"$nin": excludedIDs}
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

// CountAll counts every room document.
func (r *MongoRoomRepo) CountAll() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

// AveragePrice computes the mean nightly rate across the catalog.
func (r *MongoRoomRepo) AveragePrice() (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"avgPrice": bson.M{"$avg": "$pricePerNight"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		AvgPrice float64 `bson:"avgPrice"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error decoding aggregation result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].AvgPrice, nil
}

// CountByType groups the catalog by room type.
func (r *MongoRoomRepo) CountByType() (map[string]int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$roomType",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Type  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}

	byType := make(map[string]int64, len(results))
	for _, res := range results {
		byType[res.Type] = res.Count
	}
	return byType, nil
}
