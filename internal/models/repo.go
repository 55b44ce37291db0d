package models

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	// BookingDataKey holds the whole booking store snapshot.
	BookingDataKey = "bookingData"
	// UserAuthKey holds the signed-in identity.
	UserAuthKey = "userAuth"
)

var ErrSlotNotFound = errors.New("slot not found")

// SlotRepo is a durable key-value store where every key holds one opaque blob
// that is overwritten as a whole.
type SlotRepo interface {
	GetSlot(ctx context.Context, key string) ([]byte, error)
	SetSlot(ctx context.Context, key string, value []byte) error
	DeleteSlot(ctx context.Context, key string) error
}

type SupabaseRepo struct {
	supabaseClient *supabase.Client
}

func SupabaseNewRepo(supabaseClient *supabase.Client) *SupabaseRepo {
	return &SupabaseRepo{
		supabaseClient: supabaseClient,
	}
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	if dbName == "" {
		dbName = DefaultDbName
	}
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}
