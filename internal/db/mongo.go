package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"prepwise-backend-V1.0/internal/config"
)

var (
	mongoClient   *mongo.Client
	mongoDatabase *mongo.Database
)

// InitMongoFromConfig connects to the document store holding the interview
// session aggregates, topic cards and question history.
func InitMongoFromConfig(cfg *config.APIConfig) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}

	mongoClient = client
	mongoDatabase = client.Database(cfg.Mongo.Database)
}

// GetMongo returns the document database handle.
func GetMongo() *mongo.Database {
	return mongoDatabase
}

// CloseMongo disconnects the Mongo client.
func CloseMongo() {
	if mongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = mongoClient.Disconnect(ctx)
}
