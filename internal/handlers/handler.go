package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mealbridge/backend/internal/store"
)

const opTimeout = 5 * time.Second

// Handler carries the four stores; one instance serves all routes.
type Handler struct {
	Users    store.UserStore
	Foods    store.FoodStore
	Reviews  store.ReviewStore
	Requests store.RequestStore
}

func NewHandler(stores *store.Stores) *Handler {
	return &Handler{
		Users:    stores.Users,
		Foods:    stores.Foods,
		Reviews:  stores.Reviews,
		Requests: stores.Requests,
	}
}

func opContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), opTimeout)
}

// internalError logs the store failure and answers with a generic 500. The
// operation is never retried.
func internalError(c *gin.Context, op string, err error) {
	log.Printf("[%s] store error: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
