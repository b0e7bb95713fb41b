package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *models.Activity) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Activity, error)
	FindByUserIDBetween(ctx context.Context, userID primitive.ObjectID, start, end time.Time) ([]models.Activity, error)
}

type mongoActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) ActivityRepository {
	return &mongoActivityRepository{col: db.Collection("activities")}
}

func (r *mongoActivityRepository) Insert(ctx context.Context, activity *models.Activity) error {
	if activity.Id.IsZero() {
		activity.Id = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, activity)
	return err
}

func (r *mongoActivityRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Activity, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *mongoActivityRepository) FindByUserIDBetween(ctx context.Context, userID primitive.ObjectID, start, end time.Time) ([]models.Activity, error) {
	filter := bson.M{
		"userId": userID,
		"createdAt": bson.M{
			"$gte": start,
			"$lt":  end,
		},
	}
	return r.find(ctx, filter)
}

func (r *mongoActivityRepository) find(ctx context.Context, filter bson.M) ([]models.Activity, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
