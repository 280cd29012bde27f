package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB holds the mongo client and the collections the API reads and writes.
// It is constructed once at startup and passed to handlers and middleware.
type DB struct {
	Client      *mongo.Client
	Users       *mongo.Collection
	BioData     *mongo.Collection
	Reviews     *mongo.Collection
	Favourites  *mongo.Collection
	ReqContacts *mongo.Collection
	ReqPremium  *mongo.Collection
	Payments    *mongo.Collection
}

// New wraps an already-connected client. Split out from Connect so tests can
// supply their own client.
func New(client *mongo.Client, dbName string) *DB {
	db := client.Database(dbName)
	return &DB{
		Client:      client,
		Users:       db.Collection("users"),
		BioData:     db.Collection("bioData"),
		Reviews:     db.Collection("reviews"),
		Favourites:  db.Collection("favourites"),
		ReqContacts: db.Collection("reqContacts"),
		ReqPremium:  db.Collection("reqPremium"),
		Payments:    db.Collection("payments"),
	}
}

func Connect(uri, dbName string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Ping MongoDB
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB successfully")
	return New(client, dbName), nil
}

func (d *DB) Close() error {
	if d == nil || d.Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := d.Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
