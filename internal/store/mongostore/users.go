package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/notably-dev/notably/internal/models"
	"github.com/notably-dev/notably/internal/store"
)

// Users implements store.UserStore over the users collection.
type Users struct {
	collection *mongo.Collection
}

func NewUsers(collection *mongo.Collection) *Users {
	return &Users{collection: collection}
}

func (u *Users) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := u.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (u *Users) CreateUser(ctx context.Context, user *models.User) error {
	result, err := u.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (u *Users) UpdateUsername(ctx context.Context, userID primitive.ObjectID, username string) (*models.User, error) {
	var updated models.User

	err := u.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"username": username}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

func (u *Users) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	result, err := u.collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (u *Users) UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	err := u.collection.FindOne(ctx, bson.M{"_id": userID},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
