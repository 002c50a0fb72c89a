package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mealbridge/backend/internal/models"
)

// Collection names predate this service and are shared with the deployed
// frontends; do not rename.
const (
	usersCollection    = "allUsers"
	foodsCollection    = "foodCollection"
	reviewsCollection  = "reviews"
	requestsCollection = "requestedFoods"
)

// Stores bundles the four Mongo-backed stores over one database handle.
type Stores struct {
	Users    UserStore
	Foods    FoodStore
	Reviews  ReviewStore
	Requests RequestStore
}

func NewMongoStores(db *mongo.Database) *Stores {
	return &Stores{
		Users:    &mongoUserStore{coll: db.Collection(usersCollection)},
		Foods:    &mongoFoodStore{coll: db.Collection(foodsCollection)},
		Reviews:  &mongoReviewStore{coll: db.Collection(reviewsCollection)},
		Requests: &mongoRequestStore{coll: db.Collection(requestsCollection)},
	}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return oid, nil
}

type mongoUserStore struct {
	coll *mongo.Collection
}

func (s *mongoUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	user.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		return "", err
	}
	return user.ID.Hex(), nil
}

func (s *mongoUserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type mongoFoodStore struct {
	coll *mongo.Collection
}

func (s *mongoFoodStore) Insert(ctx context.Context, food *models.Food) (string, error) {
	food.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, food); err != nil {
		return "", err
	}
	return food.ID.Hex(), nil
}

func (s *mongoFoodStore) Get(ctx context.Context, id string) (*models.Food, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var food models.Food
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&food)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *mongoFoodStore) ListAvailable(ctx context.Context) ([]models.Food, error) {
	return s.list(ctx, bson.M{"foodStatus": models.FoodStatusAvailable}, nil)
}

func (s *mongoFoodStore) ListByID(ctx context.Context, id string) ([]models.Food, error) {
	oid, err := objectID(id)
	if err != nil {
		return []models.Food{}, nil
	}
	return s.list(ctx, bson.M{"_id": oid}, nil)
}

func (s *mongoFoodStore) ListByDonor(ctx context.Context, email string) ([]models.Food, error) {
	return s.list(ctx, bson.M{"donor.donorEmail": email}, nil)
}

// ListFeatured sorts by foodQuantity descending; ties fall back to the
// store's natural order, which is not deterministic across runs.
func (s *mongoFoodStore) ListFeatured(ctx context.Context, limit int) ([]models.Food, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "foodQuantity", Value: -1}}).
		SetLimit(int64(limit))
	return s.list(ctx, bson.M{"foodStatus": models.FoodStatusAvailable}, opts)
}

func (s *mongoFoodStore) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Food, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = s.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// SetFields does a shallow $set of the given fields, overwriting each top
// level field as a whole.
func (s *mongoFoodStore) SetFields(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoFoodStore) SetQuantity(ctx context.Context, id string, quantity int) error {
	return s.SetFields(ctx, id, map[string]interface{}{"foodQuantity": quantity})
}

func (s *mongoFoodStore) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoReviewStore struct {
	coll *mongo.Collection
}

func (s *mongoReviewStore) Insert(ctx context.Context, review *models.Review) (string, error) {
	review.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, review); err != nil {
		return "", err
	}
	return review.ID.Hex(), nil
}

func (s *mongoReviewStore) List(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

type mongoRequestStore struct {
	coll *mongo.Collection
}

func (s *mongoRequestStore) Insert(ctx context.Context, request *models.FoodRequest) (string, error) {
	request.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, request); err != nil {
		return "", err
	}
	return request.ID.Hex(), nil
}

func (s *mongoRequestStore) Get(ctx context.Context, id string) (*models.FoodRequest, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var request models.FoodRequest
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *mongoRequestStore) ListByRequester(ctx context.Context, email string) ([]models.FoodRequest, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"requestedUser.email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.FoodRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *mongoRequestStore) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
