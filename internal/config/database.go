package config

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitDatabase connects to MongoDB and ensures the indexes the reconciler
// relies on: the unique index on resumeId is the sole cross-request
// synchronization point for concurrent create races.
func InitDatabase(cfg *Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := strings.TrimSuffix(cfg.Database.URI, "/")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	db := client.Database(cfg.Database.DBName)

	resumeIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "resumeId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
		},
	}
	if _, err := db.Collection("resumes").Indexes().CreateMany(ctx, resumeIndexes); err != nil {
		return nil, fmt.Errorf("failed to create resume indexes: %w", err)
	}

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, userIndex); err != nil {
		return nil, fmt.Errorf("failed to create user index: %w", err)
	}

	log.Println("✅ Database indexes ensured")

	return db, nil
}
