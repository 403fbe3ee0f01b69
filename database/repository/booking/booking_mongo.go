package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"tablebook/config"
	"tablebook/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll        *mongo.Collection
	strictSlots bool
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
// When strictSlots is true a unique (date, time) index backs the slot
// uniqueness guarantee.
func NewMongoBookingRepo(strictSlots bool) BookingRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("bookings")
	repo := &MongoBookingRepo{coll: coll, strictSlots: strictSlots}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
