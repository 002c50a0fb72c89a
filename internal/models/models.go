package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food status values stored in foodStatus.
const (
	FoodStatusAvailable   = "available"
	FoodStatusUnavailable = "unavailable"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// DonorInfo is denormalized into every Food at creation time. DonorEmail is
// the ownership key for update and delete and never changes after insert.
type DonorInfo struct {
	DonorEmail string `bson:"donorEmail" json:"donorEmail"`
	DonorName  string `bson:"donorName" json:"donorName"`
	DonorImage string `bson:"donorImage" json:"donorImage"`
}

type Food struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodName        string             `bson:"foodName" json:"foodName"`
	FoodImage       string             `bson:"foodImage" json:"foodImage"`
	FoodQuantity    int                `bson:"foodQuantity" json:"foodQuantity"`
	FoodStatus      string             `bson:"foodStatus" json:"foodStatus"`
	PickupLocation  string             `bson:"pickupLocation" json:"pickupLocation"`
	ExpiredDate     string             `bson:"expiredDate" json:"expiredDate"`
	AdditionalNotes string             `bson:"additionalNotes" json:"additionalNotes"`
	Donor           DonorInfo          `bson:"donor" json:"donor"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	UserName  string             `bson:"userName" json:"userName"`
	UserImage string             `bson:"userImage" json:"userImage"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// RequesterInfo mirrors DonorInfo for food requests; Email is the ownership
// key for deletion.
type RequesterInfo struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image" json:"image"`
}

// FoodRequest references a Food by id but carries its own denormalized copy
// of the food and donor fields. Creating a request does not change the
// referenced Food's quantity or status.
type FoodRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodID        string             `bson:"foodId" json:"foodId"`
	FoodName      string             `bson:"foodName" json:"foodName"`
	FoodImage     string             `bson:"foodImage" json:"foodImage"`
	DonorEmail    string             `bson:"donorEmail" json:"donorEmail"`
	ExpectedDate  string             `bson:"expectedDate" json:"expectedDate"`
	RequestNote   string             `bson:"requestNote" json:"requestNote"`
	RequestedUser RequesterInfo      `bson:"requestedUser" json:"requestedUser"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
