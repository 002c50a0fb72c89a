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

// featuredLimit caps the /featuredfood response.
const featuredLimit = 6

type AddFoodPayload struct {
	FoodName        string `json:"foodName" binding:"required"`
	FoodImage       string `json:"foodImage"`
	FoodQuantity    int    `json:"foodQuantity"`
	FoodStatus      string `json:"foodStatus"`
	PickupLocation  string `json:"pickupLocation"`
	ExpiredDate     string `json:"expiredDate"`
	AdditionalNotes string `json:"additionalNotes"`
}

// AddFood inserts a donation. The donor block comes from the verified
// identity, never from the request body.
func (h *Handler) AddFood(c *gin.Context) {
	var payload AddFoodPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	status := payload.FoodStatus
	if status == "" {
		status = models.FoodStatusAvailable
	}
	newFood := models.Food{
		FoodName:        payload.FoodName,
		FoodImage:       payload.FoodImage,
		FoodQuantity:    payload.FoodQuantity,
		FoodStatus:      status,
		PickupLocation:  payload.PickupLocation,
		ExpiredDate:     payload.ExpiredDate,
		AdditionalNotes: payload.AdditionalNotes,
		Donor: models.DonorInfo{
			DonorEmail: ident.Email,
			DonorName:  ident.Name,
			DonorImage: ident.Picture,
		},
		CreatedAt: time.Now(),
	}

	ctx, cancel := opContext(c)
	defer cancel()

	if _, err := h.Foods.Insert(ctx, &newFood); err != nil {
		internalError(c, "AddFood", err)
		return
	}
	c.JSON(http.StatusCreated, newFood)
}

// ListFoods serves /allfoods. Filter precedence: id, then email, then the
// default available-only listing.
func (h *Handler) ListFoods(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	var foods []models.Food
	var err error
	switch {
	case c.Query("id") != "":
		foods, err = h.Foods.ListByID(ctx, c.Query("id"))
	case c.Query("email") != "":
		foods, err = h.Foods.ListByDonor(ctx, c.Query("email"))
	default:
		foods, err = h.Foods.ListAvailable(ctx)
	}
	if err != nil {
		internalError(c, "ListFoods", err)
		return
	}
	if foods == nil {
		foods = make([]models.Food, 0)
	}
	c.JSON(http.StatusOK, foods)
}

func (h *Handler) FeaturedFoods(c *gin.Context) {
	ctx, cancel := opContext(c)
	defer cancel()

	foods, err := h.Foods.ListFeatured(ctx, featuredLimit)
	if err != nil {
		internalError(c, "FeaturedFoods", err)
		return
	}
	if foods == nil {
		foods = make([]models.Food, 0)
	}
	c.JSON(http.StatusOK, foods)
}

func (h *Handler) MyFoods(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	foods, err := h.Foods.ListByDonor(ctx, ident.Email)
	if err != nil {
		internalError(c, "MyFoods", err)
		return
	}
	if foods == nil {
		foods = make([]models.Food, 0)
	}
	c.JSON(http.StatusOK, foods)
}

func (h *Handler) GetFood(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	food, err := h.Foods.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
		return
	}
	if err != nil {
		internalError(c, "GetFood", err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// UpdateFood merges the submitted fields into the stored document. Top level
// fields are overwritten as a whole; _id, donor and createdAt are immutable.
func (h *Handler) UpdateFood(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	delete(patch, "_id")
	delete(patch, "donor")
	delete(patch, "createdAt")
	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields in payload"})
		return
	}

	_, ok := loadOwned(c, "UpdateFood",
		func(ctx context.Context) (*models.Food, error) { return h.Foods.Get(ctx, id) },
		func(f *models.Food) string { return f.Donor.DonorEmail })
	if !ok {
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	if err := h.Foods.SetFields(ctx, id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		internalError(c, "UpdateFood", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food updated successfully"})
}

type UpdateFoodQuantityPayload struct {
	FoodQuantity *int `json:"foodQuantity" binding:"required"`
}

// UpdateFoodQuantity sets foodQuantity only. The pointer binding makes a
// missing field a 400 while still accepting an explicit zero.
func (h *Handler) UpdateFoodQuantity(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	var payload UpdateFoodQuantityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foodQuantity is required"})
		return
	}

	_, ok := loadOwned(c, "UpdateFoodQuantity",
		func(ctx context.Context) (*models.Food, error) { return h.Foods.Get(ctx, id) },
		func(f *models.Food) string { return f.Donor.DonorEmail })
	if !ok {
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	if err := h.Foods.SetQuantity(ctx, id, *payload.FoodQuantity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		internalError(c, "UpdateFoodQuantity", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food quantity updated successfully"})
}

func (h *Handler) DeleteFood(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food ID"})
		return
	}

	_, ok := loadOwned(c, "DeleteFood",
		func(ctx context.Context) (*models.Food, error) { return h.Foods.Get(ctx, id) },
		func(f *models.Food) string { return f.Donor.DonorEmail })
	if !ok {
		return
	}

	ctx, cancel := opContext(c)
	defer cancel()

	if err := h.Foods.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food not found"})
			return
		}
		internalError(c, "DeleteFood", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food deleted successfully"})
}
