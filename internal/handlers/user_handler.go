package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cookingcamp/cooking-camp-api/internal/middleware"
	"github.com/cookingcamp/cooking-camp-api/internal/models"
)

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	PhotoURL string `json:"photoUrl"`
}

// RegisterUser persists profile metadata for a new user. Registration
// is idempotent on email: a second call with the same email performs
// no insert and answers with the already-exists message. The role is
// never taken from the request body; promotion endpoints own it.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Store.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already Exists"})
		return
	}

	// Check-then-insert; concurrent registrations for the same email
	// can race past the check.
	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     models.RoleNone,
	}
	result, err := h.Store.InsertUser(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListUsers returns every user document. Admin-gated by middleware.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin answers whether the caller is an admin. It only answers
// for the token's own email; asking about anyone else is a 403.
func (h *Handler) CheckAdmin(c *gin.Context) {
	h.checkRole(c, models.RoleAdmin, "admin")
}

// CheckInstructor is the instructor twin of CheckAdmin.
func (h *Handler) CheckInstructor(c *gin.Context) {
	h.checkRole(c, models.RoleInstructor, "instructor")
}

func (h *Handler) checkRole(c *gin.Context, role models.Role, field string) {
	email := c.Param("email")
	if email != c.GetString(middleware.EmailKey) {
		c.JSON(http.StatusForbidden, gin.H{"error": true, "message": "Forbidden access"})
		return
	}

	user, err := h.Store.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{field: user != nil && user.Role == role})
}

// MakeAdmin sets a user's role to admin. Admin-gated by middleware.
func (h *Handler) MakeAdmin(c *gin.Context) {
	h.setRole(c, models.RoleAdmin)
}

// MakeInstructor sets a user's role to instructor. Admin-gated by
// middleware.
func (h *Handler) MakeInstructor(c *gin.Context) {
	h.setRole(c, models.RoleInstructor)
}

func (h *Handler) setRole(c *gin.Context, role models.Role) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	result, err := h.Store.SetUserRole(c.Request.Context(), id, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user role"})
		return
	}

	c.JSON(http.StatusOK, result)
}
