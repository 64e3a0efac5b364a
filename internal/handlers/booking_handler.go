package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cookingcamp/cooking-camp-api/internal/middleware"
	"github.com/cookingcamp/cooking-camp-api/internal/models"
)

// ListBookings returns the bookings for the email in the query
// string. No email falls open to an empty list (kept for client
// compatibility); an email that is not the token's own is a 403.
func (h *Handler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.Booking{})
		return
	}
	if email != c.GetString(middleware.EmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "Forbidden access"})
		return
	}

	bookings, err := h.Store.BookingsByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CreateBooking inserts one booking document. A user may book the
// same class twice; there is no uniqueness constraint.
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Store.InsertBooking(c.Request.Context(), booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteBooking removes a booking by id. Deleting an absent id
// succeeds with a zero-count result.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	result, err := h.Store.DeleteBooking(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, result)
}
