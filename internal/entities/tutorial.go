package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tutorial represents a tutorial document in the database
type Tutorial struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"` // Assigned by MongoDB on insert
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Published   bool               `json:"published" bson:"published"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
