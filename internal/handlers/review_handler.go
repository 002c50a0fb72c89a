package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mealbridge/backend/internal/models"
)

type AddReviewPayload struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment" binding:"required"`
}

// AddReview appends a review. Reviews carry the verified identity, never a
// caller-supplied email, and have no update or delete route.
func (h *Handler) AddReview(c *gin.Context) {
	var payload AddReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	newReview := models.Review{
		UserEmail: ident.Email,
		UserName:  ident.Name,
		UserImage: ident.Picture,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
		CreatedAt: time.Now(),
	}

	ctx, cancel := opContext(c)
	defer cancel()

	if _, err := h.Reviews.Insert(ctx, &newReview); err != nil {
		internalError(c, "AddReview", err)
		return
	}
	c.JSON(http.StatusCreated, newReview)
}

func (h *Handler) ListReviews(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	reviews, err := h.Reviews.List(ctx)
	if err != nil {
		internalError(c, "ListReviews", err)
		return
	}
	if reviews == nil {
		reviews = make([]models.Review, 0)
	}
	c.JSON(http.StatusOK, reviews)
}
