package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cookingcamp/cooking-camp-api/internal/models"
	"github.com/cookingcamp/cooking-camp-api/internal/services"
)

type paymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntent asks the processor for a card payment intent
// for the given decimal amount and returns its client secret.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), services.MinorUnits(req.Price))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": true, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment persists a completed payment and deletes the bookings
// it settles. The insert and the delete are two independent store
// operations, not a transaction: a delete failure after a successful
// insert leaves the payment recorded with the bookings still present.
func (h *Handler) RecordPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(payment.BookedItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment must list the bookings it settles"})
		return
	}

	ids := make([]primitive.ObjectID, 0, len(payment.BookedItems))
	for _, item := range payment.BookedItems {
		id, err := primitive.ObjectIDFromHex(item)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID in bookedItems"})
			return
		}
		ids = append(ids, id)
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	insertResult, err := h.Store.InsertPayment(c.Request.Context(), payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	deleteResult, err := h.Store.DeleteBookings(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment recorded but booking cleanup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertResult": insertResult, "deleteResult": deleteResult})
}

// ListPayments returns every payment record. Unauthenticated.
func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.Store.ListPayments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
