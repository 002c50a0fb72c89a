package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mealbridge/backend/internal/identity"
	"mealbridge/backend/internal/models"
	"mealbridge/backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeVerifier resolves fixed tokens to identities.
type fakeVerifier struct {
	tokens map[string]identity.Identity
}

func (v *fakeVerifier) Verify(_ context.Context, token string) (*identity.Identity, error) {
	ident, ok := v.tokens[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return &ident, nil
}

type fakeUserStore struct {
	users []models.User
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUserStore) Insert(_ context.Context, user *models.User) (string, error) {
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, *user)
	return user.ID.Hex(), nil
}

func (s *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	return append([]models.User(nil), s.users...), nil
}

type fakeFoodStore struct {
	foods []models.Food
}

func (s *fakeFoodStore) Insert(_ context.Context, food *models.Food) (string, error) {
	food.ID = primitive.NewObjectID()
	s.foods = append(s.foods, *food)
	return food.ID.Hex(), nil
}

func (s *fakeFoodStore) Get(_ context.Context, id string) (*models.Food, error) {
	for i := range s.foods {
		if s.foods[i].ID.Hex() == id {
			f := s.foods[i]
			return &f, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeFoodStore) ListAvailable(_ context.Context) ([]models.Food, error) {
	var out []models.Food
	for _, f := range s.foods {
		if f.FoodStatus == models.FoodStatusAvailable {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *fakeFoodStore) ListByID(ctx context.Context, id string) ([]models.Food, error) {
	f, err := s.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return []models.Food{}, nil
	}
	if err != nil {
		return nil, err
	}
	return []models.Food{*f}, nil
}

func (s *fakeFoodStore) ListByDonor(_ context.Context, email string) ([]models.Food, error) {
	var out []models.Food
	for _, f := range s.foods {
		if f.Donor.DonorEmail == email {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *fakeFoodStore) ListFeatured(ctx context.Context, limit int) ([]models.Food, error) {
	available, err := s.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].FoodQuantity > available[j].FoodQuantity
	})
	if len(available) > limit {
		available = available[:limit]
	}
	return available, nil
}

func (s *fakeFoodStore) SetFields(_ context.Context, id string, fields map[string]interface{}) error {
	for i := range s.foods {
		if s.foods[i].ID.Hex() != id {
			continue
		}
		for key, value := range fields {
			switch key {
			case "foodName":
				s.foods[i].FoodName, _ = value.(string)
			case "foodImage":
				s.foods[i].FoodImage, _ = value.(string)
			case "foodStatus":
				s.foods[i].FoodStatus, _ = value.(string)
			case "pickupLocation":
				s.foods[i].PickupLocation, _ = value.(string)
			case "expiredDate":
				s.foods[i].ExpiredDate, _ = value.(string)
			case "additionalNotes":
				s.foods[i].AdditionalNotes, _ = value.(string)
			case "foodQuantity":
				switch n := value.(type) {
				case int:
					s.foods[i].FoodQuantity = n
				case float64:
					s.foods[i].FoodQuantity = int(n)
				}
			}
		}
		return nil
	}
	return store.ErrNotFound
}

func (s *fakeFoodStore) SetQuantity(ctx context.Context, id string, quantity int) error {
	return s.SetFields(ctx, id, map[string]interface{}{"foodQuantity": quantity})
}

func (s *fakeFoodStore) Delete(_ context.Context, id string) error {
	for i := range s.foods {
		if s.foods[i].ID.Hex() == id {
			s.foods = append(s.foods[:i], s.foods[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeReviewStore struct {
	reviews []models.Review
}

func (s *fakeReviewStore) Insert(_ context.Context, review *models.Review) (string, error) {
	review.ID = primitive.NewObjectID()
	s.reviews = append(s.reviews, *review)
	return review.ID.Hex(), nil
}

func (s *fakeReviewStore) List(_ context.Context) ([]models.Review, error) {
	return append([]models.Review(nil), s.reviews...), nil
}

type fakeRequestStore struct {
	requests []models.FoodRequest
}

func (s *fakeRequestStore) Insert(_ context.Context, request *models.FoodRequest) (string, error) {
	request.ID = primitive.NewObjectID()
	s.requests = append(s.requests, *request)
	return request.ID.Hex(), nil
}

func (s *fakeRequestStore) Get(_ context.Context, id string) (*models.FoodRequest, error) {
	for i := range s.requests {
		if s.requests[i].ID.Hex() == id {
			r := s.requests[i]
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeRequestStore) ListByRequester(_ context.Context, email string) ([]models.FoodRequest, error) {
	var out []models.FoodRequest
	for _, r := range s.requests {
		if r.RequestedUser.Email == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeRequestStore) Delete(_ context.Context, id string) error {
	for i := range s.requests {
		if s.requests[i].ID.Hex() == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type testEnv struct {
	router   *gin.Engine
	users    *fakeUserStore
	foods    *fakeFoodStore
	reviews  *fakeReviewStore
	requests *fakeRequestStore
}

// Tokens accepted by the test verifier.
const (
	donorToken     = "donor-token"
	requesterToken = "requester-token"
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:    &fakeUserStore{},
		foods:    &fakeFoodStore{},
		reviews:  &fakeReviewStore{},
		requests: &fakeRequestStore{},
	}
	handler := &Handler{
		Users:    env.users,
		Foods:    env.foods,
		Reviews:  env.reviews,
		Requests: env.requests,
	}
	verifier := &fakeVerifier{tokens: map[string]identity.Identity{
		donorToken:     {Email: "d@x.com", Name: "Donor", Picture: "https://img/d.png"},
		requesterToken: {Email: "e@y.com", Name: "Requester", Picture: "https://img/e.png"},
	}}
	env.router = NewRouter(handler, verifier, "")
	return env
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
