package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"example.com/shop-backend/internal/models"
)

// CartService applies cart and saved-products mutations to a user
// document. Every mutation follows the same pattern: load the user,
// rewrite the line slice in memory, persist the whole field. Writes to
// the same user from concurrent requests are last-writer-wins; there is
// no line-level locking.
type CartService interface {
	Add(ctx context.Context, userID, productID string) ([]models.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) ([]models.CartLine, error)
	Remove(ctx context.Context, userID, productID string) ([]models.CartLine, error)
	Clear(ctx context.Context, userID string) ([]models.CartLine, error)
	Get(ctx context.Context, userID string) ([]models.PopulatedCartLine, error)
	Save(ctx context.Context, userID, productID string) ([]models.CartLine, error)
	Unsave(ctx context.Context, userID, productID string) ([]models.CartLine, error)
	GetSaved(ctx context.Context, userID string) ([]models.PopulatedCartLine, error)
}

type cartService struct {
	users    *mongo.Collection
	products *mongo.Collection
}

// NewCartService creates a CartService over the users and products
// collections.
func NewCartService(db *mongo.Database) CartService {
	return &cartService{
		users:    db.Collection("users"),
		products: db.Collection("products"),
	}
}

// addCartLine appends or increments the line for the raw product id.
// An unparseable id cannot be stored as a reference and is an error.
func addCartLine(lines []models.CartLine, rawProductID string) ([]models.CartLine, error) {
	pid, err := primitive.ObjectIDFromHex(rawProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}
	return models.AddLine(lines, pid), nil
}

// setCartLineQuantity overwrites the quantity of the line for the raw
// product id. An unparseable id matches no stored line, so it reports
// the product as not in the cart, same as a well-formed unknown id.
func setCartLineQuantity(lines []models.CartLine, rawProductID string, quantity int) ([]models.CartLine, error) {
	pid, err := primitive.ObjectIDFromHex(rawProductID)
	if err != nil {
		return nil, ErrProductNotInCart
	}
	out, ok := models.SetLineQuantity(lines, pid, quantity)
	if !ok {
		return nil, ErrProductNotInCart
	}
	return out, nil
}

// removeCartLine drops the line for the raw product id. Removal of an
// absent product is a no-op, and an unparseable id matches no line, so
// both leave the slice unchanged rather than erroring.
func removeCartLine(lines []models.CartLine, rawProductID string) []models.CartLine {
	pid, err := primitive.ObjectIDFromHex(rawProductID)
	if err != nil {
		return lines
	}
	return models.RemoveLine(lines, pid)
}

func (s *cartService) Add(ctx context.Context, userID, productID string) ([]models.CartLine, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, err := addCartLine(user.Cart, productID)
	if err != nil {
		return nil, err
	}
	return lines, s.persist(ctx, user.ID, "cart", lines)
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) ([]models.CartLine, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, err := setCartLineQuantity(user.Cart, productID, quantity)
	if err != nil {
		return nil, err
	}
	return lines, s.persist(ctx, user.ID, "cart", lines)
}

func (s *cartService) Remove(ctx context.Context, userID, productID string) ([]models.CartLine, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := removeCartLine(user.Cart, productID)
	return lines, s.persist(ctx, user.ID, "cart", lines)
}

func (s *cartService) Clear(ctx context.Context, userID string) ([]models.CartLine, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := []models.CartLine{}
	return lines, s.persist(ctx, user.ID, "cart", lines)
}

func (s *cartService) Get(ctx context.Context, userID string) ([]models.PopulatedCartLine, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, user.Cart)
}

func (s *cartService) Save(ctx context.Context, userID, productID string) ([]models.CartLine, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, err := addCartLine(user.SavedProducts, productID)
	if err != nil {
		return nil, err
	}
	return lines, s.persist(ctx, user.ID, "savedProducts", lines)
}

func (s *cartService) Unsave(ctx context.Context, userID, productID string) ([]models.CartLine, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := removeCartLine(user.SavedProducts, productID)
	return lines, s.persist(ctx, user.ID, "savedProducts", lines)
}

func (s *cartService) GetSaved(ctx context.Context, userID string) ([]models.PopulatedCartLine, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, user.SavedProducts)
}

// loadUser resolves the user document. A malformed id reads as
// not-found, same as a well-formed unknown one.
func (s *cartService) loadUser(ctx context.Context, userID string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

func (s *cartService) persist(ctx context.Context, userID primitive.ObjectID, field string, lines []models.CartLine) error {
	_, err := s.users.UpdateByID(ctx, userID, bson.M{
		"$set": bson.M{field: lines, "updatedAt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", field, err)
	}
	return nil
}

// populate resolves each line's product reference to the full record
// with a single $in query. Lines whose product has been deleted keep a
// nil product, mirroring an unresolvable reference.
func (s *cartService) populate(ctx context.Context, lines []models.CartLine) ([]models.PopulatedCartLine, error) {
	ids := make([]primitive.ObjectID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	byID := make(map[primitive.ObjectID]*models.Product, len(ids))
	if len(ids) > 0 {
		cursor, err := s.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, fmt.Errorf("failed to load products: %w", err)
		}
		defer cursor.Close(ctx)

		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			return nil, fmt.Errorf("failed to decode products: %w", err)
		}
		for i := range products {
			byID[products[i].ID] = &products[i]
		}
	}

	populated := make([]models.PopulatedCartLine, len(lines))
	for i, l := range lines {
		populated[i] = models.PopulatedCartLine{
			Product:  byID[l.ProductID],
			Quantity: l.Quantity,
		}
	}
	return populated, nil
}
