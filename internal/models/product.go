package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Color is one color variant of a product: display name plus the
// background and text swatches the storefront renders it with.
type Color struct {
	Name string `bson:"name,omitempty" json:"name,omitempty"`
	Bg   string `bson:"bg,omitempty" json:"bg,omitempty"`
	Text string `bson:"text,omitempty" json:"text,omitempty"`
}

// Product is a catalog item.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	NickName    string             `bson:"nickName,omitempty" json:"nickName,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Currency    string             `bson:"currency" json:"currency"`
	Image       []string           `bson:"image" json:"image"`
	Dis         string             `bson:"dis,omitempty" json:"dis,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Rate        float64            `bson:"rate,omitempty" json:"rate,omitempty"`
	Details     float64            `bson:"details,omitempty" json:"details,omitempty"`
	Quantity    string             `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Color       []Color            `bson:"color,omitempty" json:"color,omitempty"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultCurrency is applied when a product is created without one.
const DefaultCurrency = "EGY"
