package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartLine is one (product, quantity) entry in a user's cart or
// saved-products list. The product is referenced by id, not copied.
type CartLine struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// PopulatedCartLine is a cart line with the product reference resolved
// to the full record for display. The resolved product keeps the
// productId key so clients see the same shape as a populated document.
type PopulatedCartLine struct {
	Product  *Product `json:"productId"`
	Quantity int      `json:"quantity"`
}

// AddLine increments the quantity of an existing line for productID or
// appends a new line with quantity 1. At most one line per product.
func AddLine(lines []CartLine, productID primitive.ObjectID) []CartLine {
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity++
			return lines
		}
	}
	return append(lines, CartLine{ProductID: productID, Quantity: 1})
}

// SetLineQuantity overwrites the quantity of the line for productID.
// The value is stored verbatim; callers get false when no line matches.
func SetLineQuantity(lines []CartLine, productID primitive.ObjectID, quantity int) ([]CartLine, bool) {
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			return lines, true
		}
	}
	return lines, false
}

// RemoveLine drops the line for productID. Removing an absent product
// is a no-op, not an error.
func RemoveLine(lines []CartLine, productID primitive.ObjectID) []CartLine {
	out := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	return out
}
