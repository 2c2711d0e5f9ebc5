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

// Notes implements store.NoteStore over the notes collection. Ownership is
// part of every filter on an existing note, never a separate query.
type Notes struct {
	collection *mongo.Collection
}

func NewNotes(collection *mongo.Collection) *Notes {
	return &Notes{collection: collection}
}

func ownedFilter(noteID, userID primitive.ObjectID) bson.M {
	return bson.M{"_id": noteID, "user": userID}
}

func (n *Notes) ListNotes(ctx context.Context, userID primitive.ObjectID) ([]models.Note, error) {
	cursor, err := n.collection.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, err
	}

	notes := []models.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}

	return notes, nil
}

func (n *Notes) CreateNote(ctx context.Context, note *models.Note) error {
	result, err := n.collection.InsertOne(ctx, note)
	if err != nil {
		return err
	}

	note.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (n *Notes) FindOwned(ctx context.Context, noteID, userID primitive.ObjectID) (*models.Note, error) {
	var note models.Note

	err := n.collection.FindOne(ctx, ownedFilter(noteID, userID)).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	return &note, nil
}

func (n *Notes) UpdateOwned(ctx context.Context, noteID, userID primitive.ObjectID, title, description string) (*models.Note, error) {
	var updated models.Note

	err := n.collection.FindOneAndUpdate(ctx,
		ownedFilter(noteID, userID),
		bson.M{"$set": bson.M{"title": title, "description": description}},
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

func (n *Notes) DeleteOwned(ctx context.Context, noteID, userID primitive.ObjectID) error {
	result, err := n.collection.DeleteOne(ctx, ownedFilter(noteID, userID))
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}

	return nil
}
