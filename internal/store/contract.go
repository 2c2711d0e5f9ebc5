package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/notably-dev/notably/internal/models"
)

type (
	// UserStore is the users collection as the handlers see it.
	UserStore interface {
		ListUsers(ctx context.Context) ([]models.User, error)
		CreateUser(ctx context.Context, user *models.User) error
		// UpdateUsername replaces the username of the matched user and
		// returns the document as written. ErrNotFound if no user matched.
		UpdateUsername(ctx context.Context, userID primitive.ObjectID, username string) (*models.User, error)
		DeleteUser(ctx context.Context, userID primitive.ObjectID) error
		UserExists(ctx context.Context, userID primitive.ObjectID) (bool, error)
	}

	// NoteStore is the notes collection. Every lookup or mutation of an
	// existing note filters on {_id, user} in a single query, so "exists"
	// and "owned by" are answered atomically. A note owned by someone else
	// is indistinguishable from an absent one.
	NoteStore interface {
		ListNotes(ctx context.Context, userID primitive.ObjectID) ([]models.Note, error)
		CreateNote(ctx context.Context, note *models.Note) error
		FindOwned(ctx context.Context, noteID, userID primitive.ObjectID) (*models.Note, error)
		UpdateOwned(ctx context.Context, noteID, userID primitive.ObjectID, title, description string) (*models.Note, error)
		DeleteOwned(ctx context.Context, noteID, userID primitive.ObjectID) error
	}
)
