package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed transaction. BookedItems holds the hex
// ids of the bookings it settles; those bookings are deleted when the
// payment is recorded. Payments are never updated or deleted.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Price         float64            `bson:"price" json:"price"`
	Date          time.Time          `bson:"date" json:"date"`
	BookedItems   []string           `bson:"bookedItems" json:"bookedItems"`
	ClassItems    []string           `bson:"classItems,omitempty" json:"classItems,omitempty"`
}
