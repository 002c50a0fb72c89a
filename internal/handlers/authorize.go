package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealbridge/backend/internal/identity"
	"mealbridge/backend/internal/middleware"
	"mealbridge/backend/internal/store"
)

// identityFromContext reads the verified identity on a protected route.
// RequireAuth guarantees it is set; the nil branch only fires if a route is
// wired without the middleware.
func identityFromContext(c *gin.Context) (*identity.Identity, bool) {
	ident := middleware.ForContext(c.Request.Context())
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return ident, true
}

// loadOwned fetches a record and enforces ownership for mutating routes:
// 404 when the record does not exist, 403 when it exists but the verified
// identity is not its owner. Both Food (donor email) and FoodRequest
// (requester email) deletes and updates go through here.
func loadOwned[T any](c *gin.Context, op string, load func(ctx context.Context) (*T, error), ownerEmail func(*T) string) (*T, bool) {
	ident, ok := identityFromContext(c)
	if !ok {
		return nil, false
	}

	ctx, cancel := opContext(c)
	defer cancel()

	record, err := load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return nil, false
	}
	if err != nil {
		internalError(c, op, err)
		return nil, false
	}

	if ownerEmail(record) != ident.Email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return nil, false
	}
	return record, true
}
