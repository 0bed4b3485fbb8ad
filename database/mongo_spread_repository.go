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

// MongoSpreadRepository stores the weekly spread sheets. Overwriting a
// week's sheet keeps a copy of the prior version in a backup collection
// so an administrator can recover from a bad upload.
type MongoSpreadRepository struct {
	collection *mongo.Collection
	backups    *mongo.Collection
}

// NewMongoSpreadRepository creates a new MongoDB spread repository
func NewMongoSpreadRepository(db *MongoDB) *MongoSpreadRepository {
	return &MongoSpreadRepository{
		collection: db.GetCollection("spreads"),
		backups:    db.GetCollection("spread_backups"),
	}
}

// FindBySeasonWeek returns the spread sheet for one week, or nil if no
// sheet has been uploaded
func (r *MongoSpreadRepository) FindBySeasonWeek(ctx context.Context, season, week int) (*models.WeeklySpreads, error) {
	filter := bson.M{"season": season, "week": week}

	var spreads models.WeeklySpreads
	err := r.collection.FindOne(ctx, filter).Decode(&spreads)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find spreads: %w", err)
	}

	return &spreads, nil
}

// Upsert stores a week's spread sheet, backing up any prior version first
func (r *MongoSpreadRepository) Upsert(ctx context.Context, spreads *models.WeeklySpreads) error {
	existing, err := r.FindBySeasonWeek(ctx, spreads.Season, spreads.Week)
	if err != nil {
		return err
	}

	if existing != nil {
		backup := bson.M{
			"season":     existing.Season,
			"week":       existing.Week,
			"games":      existing.Games,
			"updated_at": existing.UpdatedAt,
			"backed_up":  time.Now(),
		}
		if _, err := r.backups.InsertOne(ctx, backup); err != nil {
			return fmt.Errorf("failed to back up prior spreads: %w", err)
		}
	}

	spreads.UpdatedAt = time.Now()
	filter := bson.M{"season": spreads.Season, "week": spreads.Week}
	update := bson.M{"$set": spreads}

	_, err = r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert spreads: %w", err)
	}

	return nil
}

// FindWeeksBySeason returns the week numbers that have a spread sheet,
// sorted ascending
func (r *MongoSpreadRepository) FindWeeksBySeason(ctx context.Context, season int) ([]int, error) {
	filter := bson.M{"season": season}
	opts := options.Find().
		SetProjection(bson.M{"week": 1}).
		SetSort(bson.D{{Key: "week", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find spread weeks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Week int `bson:"week"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode spread weeks: %w", err)
	}

	weeks := make([]int, 0, len(docs))
	for _, doc := range docs {
		weeks = append(weeks, doc.Week)
	}
	return weeks, nil
}
