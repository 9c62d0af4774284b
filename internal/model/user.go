package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents an account in the authentication system. The password hash
// is never serialized in responses.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"  json:"id"`
	Name         string        `bson:"name"           json:"name"`
	Email        string        `bson:"email"          json:"email"`
	PasswordHash string        `bson:"password_hash"  json:"-"`
	Profile      Profile       `bson:"profile"        json:"profile"`
	CreatedAt    time.Time     `bson:"created_at"     json:"-"`
	UpdatedAt    time.Time     `bson:"updated_at"     json:"-"`
}

// Profile holds the optional public details attached to a user. It lives as
// a subdocument on the user record.
type Profile struct {
	Phone      string     `bson:"phone,omitempty"      json:"phone,omitempty"`
	Birthday   *time.Time `bson:"birthday,omitempty"   json:"birthday,omitempty"`
	Website    string     `bson:"website,omitempty"    json:"website,omitempty"`
	Occupation string     `bson:"occupation,omitempty" json:"occupation,omitempty"`
}
