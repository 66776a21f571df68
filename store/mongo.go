// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielhkuo/points-tracker/models"
)

const (
	databaseName   = "points_tracker_db"
	collectionName = "app_state"

	serverSelectionTimeout = 5 * time.Second
)

// MongoStore implements Store against a MongoDB collection holding the
// single state document.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect opens a Mongo client for the given URI and verifies the
// connection with a ping. The caller aborts startup on error.
func Connect(ctx context.Context, uri string) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout).
		// Decode opaque change-history documents as maps so they
		// serialize back to JSON objects, not key/value pair arrays.
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(databaseName).Collection(collectionName),
	}, nil
}

// FetchState returns the singleton document. If the collection is empty it
// inserts the default document and returns that same value, so callers
// never see "not found".
func (s *MongoStore) FetchState(ctx context.Context) (models.AppState, error) {
	var doc models.AppState
	err := s.coll.FindOne(ctx, bson.D{}).Decode(&doc)
	if err == nil {
		return doc, nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.AppState{}, fmt.Errorf("%w: fetch state: %v", ErrUnavailable, err)
	}

	// First run: materialize the default document
	doc = models.DefaultState()
	doc.LastUpdated = timestamp()

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return models.AppState{}, fmt.Errorf("%w: initialize state: %v", ErrUnavailable, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}

	return doc, nil
}

// ReplaceState overwrites the singleton wholesale. Any caller-supplied _id
// is stripped and LastUpdated is stamped server-side. The upsert creates
// the document if none exists yet.
func (s *MongoStore) ReplaceState(ctx context.Context, doc models.AppState) error {
	doc.ID = primitive.NilObjectID
	doc.LastUpdated = timestamp()

	_, err := s.coll.ReplaceOne(ctx, bson.D{}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%w: replace state: %v", ErrUnavailable, err)
	}

	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
