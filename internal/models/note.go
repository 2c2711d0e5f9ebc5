package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note documents live in the "notes" collection. User is the owning User's
// id; the store never enforces the reference, every handler path does.
type Note struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	User        primitive.ObjectID `bson:"user" json:"user"`
}
