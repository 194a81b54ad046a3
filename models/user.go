package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account in the auth collection.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
}

// Profile holds the free-form contact/bio fields a user edits on the profile
// page. Updates merge into the existing remote record field by field.
type Profile struct {
	Name      string `bson:"name,omitempty" json:"name"`
	Bio       string `bson:"bio,omitempty" json:"bio"`
	Gender    string `bson:"gender,omitempty" json:"gender"`
	Address   string `bson:"address,omitempty" json:"address"`
	City      string `bson:"city,omitempty" json:"city"`
	State     string `bson:"state,omitempty" json:"state"`
	Phone     string `bson:"phone,omitempty" json:"phone"`
	Email     string `bson:"email,omitempty" json:"email"`
	UpdatedAt string `bson:"updatedAt,omitempty" json:"updatedAt"`
}
