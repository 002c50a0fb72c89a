package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mealbridge/backend/internal/identity"
)

// A private key for context access
type contextKey string

const userContextKey = contextKey("user")

// RequireAuth verifies the bearer token on every request and attaches the
// verified identity to the request context for handlers to read via
// ForContext.
func RequireAuth(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			log.Printf("Error verifying ID token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid auth token"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, ident)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// ForContext finds the verified identity from the context. Returns nil on
// unauthenticated routes.
func ForContext(ctx context.Context) *identity.Identity {
	raw, _ := ctx.Value(userContextKey).(*identity.Identity)
	return raw
}
