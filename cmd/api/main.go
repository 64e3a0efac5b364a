package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cookingcamp/cooking-camp-api/internal/config"
	"github.com/cookingcamp/cooking-camp-api/internal/handlers"
	"github.com/cookingcamp/cooking-camp-api/internal/middleware"
	"github.com/cookingcamp/cooking-camp-api/internal/models"
	"github.com/cookingcamp/cooking-camp-api/internal/services"
	"github.com/cookingcamp/cooking-camp-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := store.Connect(ctx, cfg.MongoURI())
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	st := store.NewMongo(client.Database("cookingDb"))
	log.Println("Successfully connected to MongoDB!")

	// --- Services and Handlers ---
	payments := services.NewStripeService(cfg.PaymentSecretKey)
	h := handlers.NewHandler(st, payments, cfg.AccessTokenSecret)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	token := middleware.TokenGuard(cfg.AccessTokenSecret)
	admin := middleware.RequireRole(st, models.RoleAdmin)
	instructor := middleware.RequireRole(st, models.RoleInstructor)

	// --- Routes ---
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

	log.Printf("Cooking Camp is running on port : %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
