package store

import (
	"context"
	"errors"

	"mealbridge/backend/internal/models"
)

// ErrNotFound is returned when a lookup or single-document write matches no
// document.
var ErrNotFound = errors.New("document not found")

// UserStore holds registered users keyed by email.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
	List(ctx context.Context) ([]models.User, error)
}

// FoodStore holds donated foods. Ownership checks happen in the handler
// layer; the store only reads and writes by id or field equality.
type FoodStore interface {
	Insert(ctx context.Context, food *models.Food) (string, error)
	Get(ctx context.Context, id string) (*models.Food, error)
	ListAvailable(ctx context.Context) ([]models.Food, error)
	ListByID(ctx context.Context, id string) ([]models.Food, error)
	ListByDonor(ctx context.Context, email string) ([]models.Food, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Food, error)
	SetFields(ctx context.Context, id string, fields map[string]interface{}) error
	SetQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}

// ReviewStore is append-only.
type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) (string, error)
	List(ctx context.Context) ([]models.Review, error)
}

// RequestStore holds food requests keyed by requester email.
type RequestStore interface {
	Insert(ctx context.Context, request *models.FoodRequest) (string, error)
	Get(ctx context.Context, id string) (*models.FoodRequest, error)
	ListByRequester(ctx context.Context, email string) ([]models.FoodRequest, error)
	Delete(ctx context.Context, id string) error
}
