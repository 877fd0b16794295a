package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on top of a *mongo.Database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *MongoStore) GetAll(ctx context.Context, collection string, dest any) error {
	return s.Find(ctx, collection, Query{}, dest)
}

func (s *MongoStore) GetOne(ctx context.Context, collection, id string, dest any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a document.
		return ErrNotFound
	}
	err = s.col(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(dest)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (s *MongoStore) Find(ctx context.Context, collection string, q Query, dest any) error {
	opts := options.Find()
	if q.SortBy != "" {
		dir := 1
		if q.SortDesc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.SortBy, Value: dir}})
	}
	if q.Page > 0 && q.PageSize > 0 {
		opts.SetSkip(int64((q.Page - 1) * q.PageSize))
		opts.SetLimit(int64(q.PageSize))
	}

	cur, err := s.col(collection).Find(ctx, eqFilter(q), opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, dest)
}

func (s *MongoStore) Count(ctx context.Context, collection string, q Query) (int64, error) {
	return s.col(collection).CountDocuments(ctx, eqFilter(q))
}

func (s *MongoStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.col(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%w: %s", ErrDuplicate, collection)
		}
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *MongoStore) Update(ctx context.Context, collection, id string, version int64, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	filter := bson.M{"_id": oid}
	update := bson.M{"$set": bson.M(fields)}
	if version >= 0 {
		filter["version"] = version
		update["$inc"] = bson.M{"version": 1}
	}

	res, err := s.col(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicate, collection)
		}
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing document from a stale version.
		if version >= 0 {
			if err := s.col(collection).FindOne(ctx, bson.M{"_id": oid}).Err(); err == nil {
				return ErrConflict
			}
		}
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Remove(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.col(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func eqFilter(q Query) bson.M {
	filter := bson.M{}
	for k, v := range q.Eq {
		filter[k] = v
	}
	return filter
}
