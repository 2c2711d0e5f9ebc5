package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Mongo holds the connected client and the two collection handles the rest
// of the application works against. Connect once in main and pass it down;
// the driver pools connections internally, so the handle is safe for
// concurrent use across requests.
type Mongo struct {
	client *mongo.Client

	Users *mongo.Collection
	Notes *mongo.Collection
}

func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	m := &Mongo{
		client: client,
		Users:  client.Database(database).Collection("users"),
		Notes:  client.Database(database).Collection("notes"),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// ensureIndexes backs the email/username uniqueness contract. Creating an
// index that already exists is a no-op, so reconnecting is safe.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.Users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
