package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cookingcamp/cooking-camp-api/internal/models"
)

// Collection names in the cookingDb database.
const (
	classCollection      = "class"
	instructorCollection = "instructor"
	bookedCollection     = "booked"
	userCollection       = "users"
	paymentCollection    = "payments"
)

// Connect opens the single long-lived client used for the lifetime of
// the process. The caller owns the shutdown via client.Disconnect.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

// Mongo implements Store on top of a mongo database handle.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// FindUserByEmail returns (nil, nil) when no user has the email.
func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := m.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// InsertUser is the second half of the check-then-insert registration
// protocol. The pair is not atomic: two concurrent registrations for
// the same email can both pass the check and both insert.
func (m *Mongo) InsertUser(ctx context.Context, u models.User) (*mongo.InsertOneResult, error) {
	return m.db.Collection(userCollection).InsertOne(ctx, u)
}

func (m *Mongo) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := m.db.Collection(userCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *Mongo) SetUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": role}}
	return m.db.Collection(userCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (m *Mongo) ListClasses(ctx context.Context) ([]models.Class, error) {
	cursor, err := m.db.Collection(classCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (m *Mongo) InsertClass(ctx context.Context, cl models.Class) (*mongo.InsertOneResult, error) {
	return m.db.Collection(classCollection).InsertOne(ctx, cl)
}

func (m *Mongo) ListInstructors(ctx context.Context) ([]models.Instructor, error) {
	cursor, err := m.db.Collection(instructorCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	instructors := []models.Instructor{}
	if err := cursor.All(ctx, &instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

func (m *Mongo) BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := m.db.Collection(bookedCollection).Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (m *Mongo) InsertBooking(ctx context.Context, b models.Booking) (*mongo.InsertOneResult, error) {
	return m.db.Collection(bookedCollection).InsertOne(ctx, b)
}

// DeleteBooking is idempotent: a missing id yields DeletedCount 0,
// not an error.
func (m *Mongo) DeleteBooking(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return m.db.Collection(bookedCollection).DeleteOne(ctx, bson.M{"_id": id})
}

func (m *Mongo) DeleteBookings(ctx context.Context, ids []primitive.ObjectID) (*mongo.DeleteResult, error) {
	return m.db.Collection(bookedCollection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (m *Mongo) InsertPayment(ctx context.Context, p models.Payment) (*mongo.InsertOneResult, error) {
	return m.db.Collection(paymentCollection).InsertOne(ctx, p)
}

func (m *Mongo) ListPayments(ctx context.Context) ([]models.Payment, error) {
	cursor, err := m.db.Collection(paymentCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
