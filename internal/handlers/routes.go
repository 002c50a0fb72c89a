package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealbridge/backend/internal/identity"
	"mealbridge/backend/internal/middleware"
)

// NewRouter wires the full route table. Paths are the ones the deployed
// frontends call, casing included.
func NewRouter(h *Handler, verifier identity.Verifier, clientURL string) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORSMiddleware(clientURL))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World!")
	})

	auth := middleware.RequireAuth(verifier)

	// users
	router.POST("/adduser", auth, h.AddUser)
	router.GET("/users", auth, h.ListUsers)

	// reviews
	router.POST("/addreviews", auth, h.AddReview)
	router.GET("/allreviews", h.ListReviews)

	// foods
	router.POST("/addfood", auth, h.AddFood)
	router.GET("/featuredfood", h.FeaturedFoods)
	router.GET("/allfoods", h.ListFoods)
	router.GET("/myfoods", auth, h.MyFoods)
	router.GET("/allFoods/:id", h.GetFood)
	router.PUT("/updateFood/:id", auth, h.UpdateFood)
	router.PATCH("/updateFoodAmount/:id", auth, h.UpdateFoodQuantity)
	router.DELETE("/allfoods/:id", auth, h.DeleteFood)

	// food requests
	router.POST("/requestedFood", auth, h.AddFoodRequest)
	router.GET("/requestedFood", auth, h.MyFoodRequests)
	router.DELETE("/requestedFood/:id", auth, h.DeleteFoodRequest)

	return router
}
