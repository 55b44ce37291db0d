package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultDbName = "hallbook"
	SlotColName   = "app_state"
)

// slotDocument keeps the blob as a string so that the stored bytes are exactly
// what the caller wrote, including blobs that are not valid JSON.
type slotDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}

func (mdb *MongodbRepo) GetSlot(ctx context.Context, key string) ([]byte, error) {
	col, err := mdb.GetCollection(ctx, mdb.dbName, SlotColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var doc slotDocument
	err = col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading slot %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (mdb *MongodbRepo) SetSlot(ctx context.Context, key string, value []byte) error {
	col, err := mdb.GetCollection(ctx, mdb.dbName, SlotColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	doc := slotDocument{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := col.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("error writing slot %s: %w", key, err)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteSlot(ctx context.Context, key string) error {
	col, err := mdb.GetCollection(ctx, mdb.dbName, SlotColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}
	if _, err := col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("error deleting slot %s: %w", key, err)
	}
	return nil
}
