package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookingcamp/cooking-camp-api/internal/models"
)

// ListClasses returns the full class catalog. Unauthenticated.
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.Store.ListClasses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve classes"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// CreateClass inserts one class offering. Instructor-gated by
// middleware.
func (h *Handler) CreateClass(c *gin.Context) {
	var class models.Class
	if err := c.ShouldBindJSON(&class); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Store.InsertClass(c.Request.Context(), class)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListInstructors returns every instructor profile. Unauthenticated.
func (h *Handler) ListInstructors(c *gin.Context) {
	instructors, err := h.Store.ListInstructors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve instructors"})
		return
	}
	c.JSON(http.StatusOK, instructors)
}
