package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image" json:"image"`
	InstructorName  string             `bson:"instructorName" json:"instructorName"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail"`
	Price           float64            `bson:"price" json:"price"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats"`
	Status          string             `bson:"status,omitempty" json:"status,omitempty"`
}

type Instructor struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image" json:"image"`
	Email           string             `bson:"email" json:"email"`
	NumberOfClasses int                `bson:"numberOfClasses,omitempty" json:"numberOfClasses,omitempty"`
	NameOfClasses   []string           `bson:"nameOfClasses,omitempty" json:"nameOfClasses,omitempty"`
}
