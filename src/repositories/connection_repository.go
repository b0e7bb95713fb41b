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

type ConnectionRepository interface {
	Insert(ctx context.Context, connection *models.Connection) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error)
	FindBetweenUsers(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ConnectionStatus, respondedAt time.Time) error
	FindPendingByRecipient(ctx context.Context, userID primitive.ObjectID) ([]models.Connection, error)
	FindAcceptedByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Connection, error)
	CountAcceptedByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type mongoConnectionRepository struct {
	col *mongo.Collection
}

func NewConnectionRepository(db *mongo.Database) ConnectionRepository {
	return &mongoConnectionRepository{col: db.Collection("connections")}
}

func (r *mongoConnectionRepository) Insert(ctx context.Context, connection *models.Connection) error {
	if connection.Id.IsZero() {
		connection.Id = primitive.NewObjectID()
	}
	connection.PairKey = models.PairKeyFor(connection.Sender, connection.Recipient)
	_, err := r.col.InsertOne(ctx, connection)
	return err
}

func (r *mongoConnectionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error) {
	var connection models.Connection
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&connection)
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

// FindBetweenUsers resolves the single connection for a pair in either
// direction, whatever its status.
func (r *mongoConnectionRepository) FindBetweenUsers(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error) {
	var connection models.Connection
	err := r.col.FindOne(ctx, bson.M{"pairKey": models.PairKeyFor(a, b)}).Decode(&connection)
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

func (r *mongoConnectionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ConnectionStatus, respondedAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"respondedAt": respondedAt,
		},
	}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoConnectionRepository) FindPendingByRecipient(ctx context.Context, userID primitive.ObjectID) ([]models.Connection, error) {
	filter := bson.M{
		"recipient": userID,
		"status":    models.ConnectionStatusPending,
	}
	return r.find(ctx, filter)
}

func (r *mongoConnectionRepository) FindAcceptedByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Connection, error) {
	return r.find(ctx, r.acceptedFilter(userID))
}

func (r *mongoConnectionRepository) CountAcceptedByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, r.acceptedFilter(userID))
}

func (r *mongoConnectionRepository) acceptedFilter(userID primitive.ObjectID) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"sender": userID},
			bson.M{"recipient": userID},
		},
		"status": models.ConnectionStatusAccepted,
	}
}

func (r *mongoConnectionRepository) find(ctx context.Context, filter bson.M) ([]models.Connection, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var connections []models.Connection
	if err := cursor.All(ctx, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}
