package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. The cart and saved-products lists are
// embedded in the user document and rewritten whole on every mutation.
// Password holds the bcrypt hash; read paths project it out so the
// omitempty tag drops the key from responses.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserName      string             `bson:"userName" json:"userName"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password,omitempty" json:"password,omitempty"`
	PhoneNumber   string             `bson:"PhoneNumber,omitempty" json:"PhoneNumber,omitempty"`
	Address       string             `bson:"Address,omitempty" json:"Address,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Banner        string             `bson:"banner,omitempty" json:"banner,omitempty"`
	Cart          []CartLine         `bson:"cart" json:"cart"`
	SavedProducts []CartLine         `bson:"savedProducts" json:"savedProducts"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
