package controllers_test

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stjoseph-dev/AlumniConnect-Backend/src/models"
)

type memUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[primitive.ObjectID]*models.User)}
	for _, u := range users {
		r.users[u.Id] = u
	}
	return r
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	r.users[user.Id] = user
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memUserRepo) Search(_ context.Context, role models.UserRole, query string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if role != "" && u.Role != role {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(query)) {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

type memConnectionRepo struct {
	connections map[primitive.ObjectID]*models.Connection
}

func newMemConnectionRepo() *memConnectionRepo {
	return &memConnectionRepo{connections: make(map[primitive.ObjectID]*models.Connection)}
}

func (r *memConnectionRepo) Insert(_ context.Context, connection *models.Connection) error {
	if connection.Id.IsZero() {
		connection.Id = primitive.NewObjectID()
	}
	connection.PairKey = models.PairKeyFor(connection.Sender, connection.Recipient)
	for _, c := range r.connections {
		if c.PairKey == connection.PairKey {
			return mongo.WriteException{WriteErrors: mongo.WriteErrors{mongo.WriteError{Code: 11000}}}
		}
	}
	copied := *connection
	r.connections[connection.Id] = &copied
	return nil
}

func (r *memConnectionRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Connection, error) {
	c, ok := r.connections[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *c
	return &copied, nil
}

func (r *memConnectionRepo) FindBetweenUsers(_ context.Context, a, b primitive.ObjectID) (*models.Connection, error) {
	key := models.PairKeyFor(a, b)
	for _, c := range r.connections {
		if c.PairKey == key {
			copied := *c
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memConnectionRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.ConnectionStatus, respondedAt time.Time) error {
	c, ok := r.connections[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	c.Status = status
	c.RespondedAt = &respondedAt
	return nil
}

func (r *memConnectionRepo) FindPendingByRecipient(_ context.Context, userID primitive.ObjectID) ([]models.Connection, error) {
	var out []models.Connection
	for _, c := range r.connections {
		if c.Recipient == userID && c.Status == models.ConnectionStatusPending {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memConnectionRepo) FindAcceptedByUser(_ context.Context, userID primitive.ObjectID) ([]models.Connection, error) {
	var out []models.Connection
	for _, c := range r.connections {
		if (c.Sender == userID || c.Recipient == userID) && c.Status == models.ConnectionStatusAccepted {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memConnectionRepo) CountAcceptedByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	accepted, err := r.FindAcceptedByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(accepted)), nil
}

type memActivityRepo struct {
	activities []models.Activity
}

func (r *memActivityRepo) Insert(_ context.Context, activity *models.Activity) error {
	if activity.Id.IsZero() {
		activity.Id = primitive.NewObjectID()
	}
	r.activities = append(r.activities, *activity)
	return nil
}

func (r *memActivityRepo) FindByUserID(_ context.Context, userID primitive.ObjectID) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range r.activities {
		if a.UserId == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memActivityRepo) FindByUserIDBetween(_ context.Context, userID primitive.ObjectID, start, end time.Time) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range r.activities {
		if a.UserId == userID && !a.CreatedAt.Before(start) && a.CreatedAt.Before(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

type memNotificationRepo struct {
	notifications []models.Notification
}

func (r *memNotificationRepo) Insert(_ context.Context, notification *models.Notification) error {
	if notification.Id.IsZero() {
		notification.Id = primitive.NewObjectID()
	}
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *memNotificationRepo) FindByRecipient(_ context.Context, recipient primitive.ObjectID) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.Recipient == recipient {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, id, recipient primitive.ObjectID) error {
	for i, n := range r.notifications {
		if n.Id == id && n.Recipient == recipient {
			r.notifications[i].Read = true
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *memNotificationRepo) MarkAllRead(_ context.Context, recipient primitive.ObjectID) error {
	for i, n := range r.notifications {
		if n.Recipient == recipient {
			r.notifications[i].Read = true
		}
	}
	return nil
}
