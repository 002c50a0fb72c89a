package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mealbridge/backend/internal/models"
	"mealbridge/backend/internal/store"
)

type AddUserPayload struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// AddUser registers a user. Registration is idempotent by email: a repeat
// call reports the existing record and writes nothing. The submitted email
// must match the verified identity.
func (h *Handler) AddUser(c *gin.Context) {
	var payload AddUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	ident, ok := identityFromContext(c)
	if !ok {
		return
	}
	if payload.Email != ident.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Email does not match authenticated user"})
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	existing, err := h.Users.GetByEmail(ctx, payload.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		internalError(c, "AddUser", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "insertedId": nil})
		return
	}

	newUser := models.User{
		Email:     payload.Email,
		Name:      payload.Name,
		Image:     payload.Image,
		CreatedAt: time.Now(),
	}
	id, err := h.Users.Insert(ctx, &newUser)
	if err != nil {
		internalError(c, "AddUser", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

func (h *Handler) ListUsers(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		internalError(c, "ListUsers", err)
		return
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	c.JSON(http.StatusOK, users)
}
