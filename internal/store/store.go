package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cookingcamp/cooking-camp-api/internal/models"
)

// Store is the document-store surface the handlers depend on. Each
// method maps to exactly one collection operation; driver result
// structs are returned as-is so responses can echo the raw outcome.
type Store interface {
	// users
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, u models.User) (*mongo.InsertOneResult, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*mongo.UpdateResult, error)

	// catalog
	ListClasses(ctx context.Context) ([]models.Class, error)
	InsertClass(ctx context.Context, cl models.Class) (*mongo.InsertOneResult, error)
	ListInstructors(ctx context.Context) ([]models.Instructor, error)

	// bookings
	BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	InsertBooking(ctx context.Context, b models.Booking) (*mongo.InsertOneResult, error)
	DeleteBooking(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	DeleteBookings(ctx context.Context, ids []primitive.ObjectID) (*mongo.DeleteResult, error)

	// payments
	InsertPayment(ctx context.Context, p models.Payment) (*mongo.InsertOneResult, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
}
