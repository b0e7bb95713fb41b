package lib

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/config"
)

var DB *mongo.Database

// ConnectDB initializes the MongoDB connection and sets the global DB variable.
func ConnectDB(cfg config.DatabaseConfig) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		Logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		Logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}

	DB = client.Database(cfg.Name)
	Logger.Info("connected to MongoDB", zap.String("database", cfg.Name))
	return client
}

// EnsureIndexes creates the indexes the application relies on. The unique pairKey
// index on connections makes duplicate requests for the same user pair fail at
// the storage layer even when two requests race past the existence pre-check.
func EnsureIndexes(ctx context.Context) error {
	connections := DB.Collection("connections")
	_, err := connections.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pairKey", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	users := DB.Collection("users")
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	})
	if err != nil {
		return err
	}

	activities := DB.Collection("activities")
	_, err = activities.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}
