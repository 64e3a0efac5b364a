package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookingcamp/cooking-camp-api/internal/store"
)

// PaymentIntents is the slice of the payment processor the handlers
// need: one call creating an intent for an amount in minor units.
type PaymentIntents interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

// Handler carries the dependencies shared by every route handler.
type Handler struct {
	Store     store.Store
	Payments  PaymentIntents
	JWTSecret string
}

func NewHandler(st store.Store, payments PaymentIntents, jwtSecret string) *Handler {
	return &Handler{
		Store:     st,
		Payments:  payments,
		JWTSecret: jwtSecret,
	}
}

// Health is the liveness endpoint.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Cooking Camp is running")
}
