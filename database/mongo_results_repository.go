package database

import (
	"context"
	"fmt"
	"time"

	"pickem-pool-go/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoResultsRepository stores each week's calculation output: the
// ordered games with declared winners, the match report, and the scored
// player totals
type MongoResultsRepository struct {
	collection *mongo.Collection
}

// NewMongoResultsRepository creates a new MongoDB results repository
func NewMongoResultsRepository(db *MongoDB) *MongoResultsRepository {
	return &MongoResultsRepository{
		collection: db.GetCollection("results"),
	}
}

// FindBySeasonWeek returns a week's stored results, or nil if the week
// has not been calculated
func (r *MongoResultsRepository) FindBySeasonWeek(ctx context.Context, season, week int) (*models.WeeklyResults, error) {
	filter := bson.M{"season": season, "week": week}

	var results models.WeeklyResults
	err := r.collection.FindOne(ctx, filter).Decode(&results)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find results: %w", err)
	}

	return &results, nil
}

// FindBySeason returns all calculated weeks for a season, sorted by week
func (r *MongoResultsRepository) FindBySeason(ctx context.Context, season int) ([]*models.WeeklyResults, error) {
	filter := bson.M{"season": season}
	opts := options.Find().SetSort(bson.D{{Key: "week", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find season results: %w", err)
	}
	defer cursor.Close(ctx)

	var results []*models.WeeklyResults
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode season results: %w", err)
	}

	return results, nil
}

// Upsert stores a week's calculation output
func (r *MongoResultsRepository) Upsert(ctx context.Context, results *models.WeeklyResults) error {
	results.UpdatedAt = time.Now()
	filter := bson.M{"season": results.Season, "week": results.Week}
	update := bson.M{"$set": results}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert results: %w", err)
	}

	return nil
}
