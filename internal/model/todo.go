package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Todo represents a single task owned by a user.
type Todo struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID   bson.ObjectID `bson:"owner_id"      json:"-"`
	Text      string        `bson:"text"          json:"text"`
	Done      bool          `bson:"done"          json:"done"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updatedAt"`
}
