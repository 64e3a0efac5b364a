package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookingcamp/cooking-camp-api/internal/utils"
)

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateToken issues a one-hour access token for the given email.
// Identity itself is bootstrapped by the external auth provider; this
// endpoint only mints the bearer credential the rest of the API
// checks.
func (h *Handler) CreateToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(req.Email, h.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
