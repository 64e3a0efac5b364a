package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cookingcamp/cooking-camp-api/internal/middleware"
	"github.com/cookingcamp/cooking-camp-api/internal/models"
	"github.com/cookingcamp/cooking-camp-api/internal/store"
	"github.com/cookingcamp/cooking-camp-api/internal/utils"
)

const testSecret = "test-secret"

// mockStore implements store.Store for testing; unset funcs fall back
// to empty results.
type mockStore struct {
	FindUserByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	InsertUserFunc      func(ctx context.Context, u models.User) (*mongo.InsertOneResult, error)
	ListUsersFunc       func(ctx context.Context) ([]models.User, error)
	SetUserRoleFunc     func(ctx context.Context, id primitive.ObjectID, role models.Role) (*mongo.UpdateResult, error)
	ListClassesFunc     func(ctx context.Context) ([]models.Class, error)
	InsertClassFunc     func(ctx context.Context, cl models.Class) (*mongo.InsertOneResult, error)
	ListInstructorsFunc func(ctx context.Context) ([]models.Instructor, error)
	BookingsByEmailFunc func(ctx context.Context, email string) ([]models.Booking, error)
	InsertBookingFunc   func(ctx context.Context, b models.Booking) (*mongo.InsertOneResult, error)
	DeleteBookingFunc   func(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	DeleteBookingsFunc  func(ctx context.Context, ids []primitive.ObjectID) (*mongo.DeleteResult, error)
	InsertPaymentFunc   func(ctx context.Context, p models.Payment) (*mongo.InsertOneResult, error)
	ListPaymentsFunc    func(ctx context.Context) ([]models.Payment, error)
}

var _ store.Store = (*mockStore)(nil)

func (m *mockStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindUserByEmailFunc != nil {
		return m.FindUserByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockStore) InsertUser(ctx context.Context, u models.User) (*mongo.InsertOneResult, error) {
	if m.InsertUserFunc != nil {
		return m.InsertUserFunc(ctx, u)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockStore) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *mockStore) SetUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) (*mongo.UpdateResult, error) {
	if m.SetUserRoleFunc != nil {
		return m.SetUserRoleFunc(ctx, id, role)
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	if m.ListClassesFunc != nil {
		return m.ListClassesFunc(ctx)
	}
	return []models.Class{}, nil
}

func (m *mockStore) InsertClass(ctx context.Context, cl models.Class) (*mongo.InsertOneResult, error) {
	if m.InsertClassFunc != nil {
		return m.InsertClassFunc(ctx, cl)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockStore) ListInstructors(ctx context.Context) ([]models.Instructor, error) {
	if m.ListInstructorsFunc != nil {
		return m.ListInstructorsFunc(ctx)
	}
	return []models.Instructor{}, nil
}

func (m *mockStore) BookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	if m.BookingsByEmailFunc != nil {
		return m.BookingsByEmailFunc(ctx, email)
	}
	return []models.Booking{}, nil
}

func (m *mockStore) InsertBooking(ctx context.Context, b models.Booking) (*mongo.InsertOneResult, error) {
	if m.InsertBookingFunc != nil {
		return m.InsertBookingFunc(ctx, b)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockStore) DeleteBooking(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if m.DeleteBookingFunc != nil {
		return m.DeleteBookingFunc(ctx, id)
	}
	return &mongo.DeleteResult{DeletedCount: 0}, nil
}

func (m *mockStore) DeleteBookings(ctx context.Context, ids []primitive.ObjectID) (*mongo.DeleteResult, error) {
	if m.DeleteBookingsFunc != nil {
		return m.DeleteBookingsFunc(ctx, ids)
	}
	return &mongo.DeleteResult{DeletedCount: int64(len(ids))}, nil
}

func (m *mockStore) InsertPayment(ctx context.Context, p models.Payment) (*mongo.InsertOneResult, error) {
	if m.InsertPaymentFunc != nil {
		return m.InsertPaymentFunc(ctx, p)
	}
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockStore) ListPayments(ctx context.Context) ([]models.Payment, error) {
	if m.ListPaymentsFunc != nil {
		return m.ListPaymentsFunc(ctx)
	}
	return []models.Payment{}, nil
}

// mockPayments implements PaymentIntents.
type mockPayments struct {
	CreateIntentFunc func(ctx context.Context, amount int64) (string, error)
}

func (m *mockPayments) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, amount)
	}
	return "pi_test_secret", nil
}

// newTestRouter wires the full route table the way cmd/api does, so
// tests exercise the real middleware chain.
func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	token := middleware.TokenGuard(testSecret)
	admin := middleware.RequireRole(h.Store, models.RoleAdmin)
	instructor := middleware.RequireRole(h.Store, models.RoleInstructor)

	r.GET("/", h.Health)
	r.POST("/jwt", h.CreateToken)
	r.GET("/users", token, admin, h.ListUsers)
	r.POST("/users", h.RegisterUser)
	r.GET("/users/admin/:email", token, h.CheckAdmin)
	r.PATCH("/users/admin/:id", token, admin, h.MakeAdmin)
	r.GET("/users/instructor/:email", token, h.CheckInstructor)
	r.PATCH("/users/instructor/:id", token, admin, h.MakeInstructor)
	r.GET("/class", h.ListClasses)
	r.POST("/class", token, instructor, h.CreateClass)
	r.GET("/instructors", h.ListInstructors)
	r.GET("/booked", token, h.ListBookings)
	r.POST("/booked", h.CreateBooking)
	r.DELETE("/booked/:id", h.DeleteBooking)
	r.POST("/create-payment-intent", token, h.CreatePaymentIntent)
	r.POST("/payments", token, h.RecordPayment)
	r.GET("/payments", h.ListPayments)

	return r
}

func newTestHandler(st store.Store) *Handler {
	return NewHandler(st, &mockPayments{}, testSecret)
}

func bearer(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.GenerateJWT(email, testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	return "Bearer " + token
}

func performRequest(r http.Handler, method, path, body, authorization string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// userLookup returns a FindUserByEmail func serving a fixed directory
// of users.
func userLookup(users map[string]models.Role) func(ctx context.Context, email string) (*models.User, error) {
	return func(ctx context.Context, email string) (*models.User, error) {
		role, ok := users[email]
		if !ok {
			return nil, nil
		}
		return &models.User{ID: primitive.NewObjectID(), Email: email, Role: role}, nil
	}
}
