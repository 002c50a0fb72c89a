package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealbridge/backend/internal/models"
	"mealbridge/backend/internal/store"
)

type AddFoodRequestPayload struct {
	FoodID       string `json:"foodId" binding:"required"`
	FoodName     string `json:"foodName"`
	FoodImage    string `json:"foodImage"`
	DonorEmail   string `json:"donorEmail"`
	ExpectedDate string `json:"expectedDate"`
	RequestNote  string `json:"requestNote"`
}

// AddFoodRequest records a request against a food. The requester block is
// stamped from the verified identity. The referenced food is not touched:
// quantity stays whatever the donor set it to.
func (h *Handler) AddFoodRequest(c *gin.Context) {
	var payload AddFoodRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	newRequest := models.FoodRequest{
		FoodID:       payload.FoodID,
		FoodName:     payload.FoodName,
		FoodImage:    payload.FoodImage,
		DonorEmail:   payload.DonorEmail,
		ExpectedDate: payload.ExpectedDate,
		RequestNote:  payload.RequestNote,
		RequestedUser: models.RequesterInfo{
			Email: ident.Email,
			Name:  ident.Name,
			Image: ident.Picture,
		},
		CreatedAt: time.Now(),
	}

	ctx, cancel := opContext(c)
	defer cancel()

	if _, err := h.Requests.Insert(ctx, &newRequest); err != nil {
		internalError(c, "AddFoodRequest", err)
		return
	}
	c.JSON(http.StatusCreated, newRequest)
}

// MyFoodRequests lists only the caller's own requests.
func (h *Handler) MyFoodRequests(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	requests, err := h.Requests.ListByRequester(ctx, ident.Email)
	if err != nil {
		internalError(c, "MyFoodRequests", err)
		return
	}
	if requests == nil {
		requests = make([]models.FoodRequest, 0)
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) DeleteFoodRequest(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	_, ok := loadOwned(c, "DeleteFoodRequest",
		func(ctx context.Context) (*models.FoodRequest, error) { return h.Requests.Get(ctx, id) },
		func(r *models.FoodRequest) string { return r.RequestedUser.Email })
	if !ok {
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	if err := h.Requests.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		internalError(c, "DeleteFoodRequest", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted successfully"})
}
