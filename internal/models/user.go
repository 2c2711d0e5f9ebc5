package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User documents live in the "users" collection. Email and username are
// unique across the collection; the indexes backing that are created at
// connect time. The password is stored verbatim.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"password"`
}
