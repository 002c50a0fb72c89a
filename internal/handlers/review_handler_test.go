package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealbridge/backend/internal/models"
)

func TestAddReviewStampsIdentity(t *testing.T) {
	env := newTestEnv(t)

	w := performRequest(env.router, "POST", "/addreviews", map[string]interface{}{
		"rating":  5,
		"comment": "Great platform",
		// userEmail from the body must be ignored.
		"userEmail": "attacker@evil.com",
	}, donorToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	decodeBody(t, w, &review)
	assert.Equal(t, "d@x.com", review.UserEmail)
	assert.Equal(t, "Great platform", review.Comment)
}

func TestAddReviewRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := performRequest(env.router, "POST", "/addreviews", map[string]interface{}{
		"comment": "Great platform",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.reviews.reviews)
}

func TestListReviewsIsPublic(t *testing.T) {
	env := newTestEnv(t)
	performRequest(env.router, "POST", "/addreviews", map[string]interface{}{"comment": "a"}, donorToken)
	performRequest(env.router, "POST", "/addreviews", map[string]interface{}{"comment": "b"}, requesterToken)

	w := performRequest(env.router, "GET", "/allreviews", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var reviews []models.Review
	decodeBody(t, w, &reviews)
	require.Len(t, reviews, 2)
}

func TestListReviewsEmptyIsArray(t *testing.T) {
	env := newTestEnv(t)

	w := performRequest(env.router, "GET", "/allreviews", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
