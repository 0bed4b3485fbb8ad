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

// MongoPicksRepository stores one WeeklyPicks document per
// (player, season, week). Resubmission replaces the prior document.
type MongoPicksRepository struct {
	collection *mongo.Collection
}

// NewMongoPicksRepository creates a new MongoDB picks repository
func NewMongoPicksRepository(db *MongoDB) *MongoPicksRepository {
	return &MongoPicksRepository{
		collection: db.GetCollection("picks"),
	}
}

// FindByPlayerWeek returns one player's picks for a week, or nil if the
// player has not submitted
func (r *MongoPicksRepository) FindByPlayerWeek(ctx context.Context, player string, season, week int) (*models.WeeklyPicks, error) {
	filter := bson.M{"player": player, "season": season, "week": week}

	var picks models.WeeklyPicks
	err := r.collection.FindOne(ctx, filter).Decode(&picks)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find picks: %w", err)
	}

	return &picks, nil
}

// FindAllByWeek returns every player's picks for a week
func (r *MongoPicksRepository) FindAllByWeek(ctx context.Context, season, week int) ([]models.WeeklyPicks, error) {
	filter := bson.M{"season": season, "week": week}
	opts := options.Find().SetSort(bson.D{{Key: "player", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find weekly picks: %w", err)
	}
	defer cursor.Close(ctx)

	var picks []models.WeeklyPicks
	if err := cursor.All(ctx, &picks); err != nil {
		return nil, fmt.Errorf("failed to decode weekly picks: %w", err)
	}

	return picks, nil
}

// Upsert stores a player's picks for a week, replacing any prior
// submission
func (r *MongoPicksRepository) Upsert(ctx context.Context, picks *models.WeeklyPicks) error {
	picks.SubmittedAt = time.Now()
	filter := bson.M{"player": picks.Player, "season": picks.Season, "week": picks.Week}
	update := bson.M{"$set": picks}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert picks: %w", err)
	}

	return nil
}
