package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a reservation linking a user (by email, loose reference)
// to a class. It has no pending/confirmed distinction: it exists until
// it is deleted directly or settled by a payment.
type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	ClassID    string             `bson:"classId" json:"classId"`
	ClassName  string             `bson:"className" json:"className"`
	ClassImage string             `bson:"classImage,omitempty" json:"classImage,omitempty"`
	Price      float64            `bson:"price" json:"price"`
}
