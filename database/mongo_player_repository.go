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

// MongoPlayerRepository stores the pool roster
type MongoPlayerRepository struct {
	collection *mongo.Collection
}

// NewMongoPlayerRepository creates a new MongoDB player repository
func NewMongoPlayerRepository(db *MongoDB) *MongoPlayerRepository {
	return &MongoPlayerRepository{
		collection: db.GetCollection("players"),
	}
}

// GetPlayerByName finds a roster entry by player name
func (r *MongoPlayerRepository) GetPlayerByName(name string) (*models.Player, error) {
	ctx, cancel := WithShortTimeout()
	defer cancel()

	var player models.Player
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&player)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("player %q not on roster", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find player: %w", err)
	}

	return &player, nil
}

// GetPlayerByID finds a roster entry by ID
func (r *MongoPlayerRepository) GetPlayerByID(id int) (*models.Player, error) {
	ctx, cancel := WithShortTimeout()
	defer cancel()

	var player models.Player
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&player)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("player %d not on roster", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find player: %w", err)
	}

	return &player, nil
}

// ListPlayers returns the full roster sorted by name
func (r *MongoPlayerRepository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer cursor.Close(ctx)

	var players []models.Player
	if err := cursor.All(ctx, &players); err != nil {
		return nil, fmt.Errorf("failed to decode players: %w", err)
	}

	return players, nil
}

// CreatePlayer inserts a new roster entry
func (r *MongoPlayerRepository) CreatePlayer(player *models.Player) error {
	ctx, cancel := WithShortTimeout()
	defer cancel()

	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, player); err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

// UpdatePlayer replaces an existing roster entry
func (r *MongoPlayerRepository) UpdatePlayer(player *models.Player) error {
	ctx, cancel := WithShortTimeout()
	defer cancel()

	player.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": player.ID}, player)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("player %d not found", player.ID)
	}
	return nil
}
