package database

import (
	"context"
	"fmt"

	"pickem-pool-go/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStandingsRepository stores one standings document per season
type MongoStandingsRepository struct {
	collection *mongo.Collection
}

// NewMongoStandingsRepository creates a new MongoDB standings repository
func NewMongoStandingsRepository(db *MongoDB) *MongoStandingsRepository {
	return &MongoStandingsRepository{
		collection: db.GetCollection("standings"),
	}
}

// FindBySeason returns a season's standings, or nil if nothing has been
// folded in yet
func (r *MongoStandingsRepository) FindBySeason(ctx context.Context, season int) (*models.Standings, error) {
	filter := bson.M{"season": season}

	var standings models.Standings
	err := r.collection.FindOne(ctx, filter).Decode(&standings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find standings: %w", err)
	}

	return &standings, nil
}

// Upsert stores a season's standings
func (r *MongoStandingsRepository) Upsert(ctx context.Context, standings *models.Standings) error {
	filter := bson.M{"season": standings.Season}
	update := bson.M{"$set": standings}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert standings: %w", err)
	}

	return nil
}
