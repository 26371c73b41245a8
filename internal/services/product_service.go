package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"example.com/shop-backend/internal/models"
)

// ProductService is plain catalog CRUD. There is no authorization and
// no uniqueness beyond field-presence checks on create.
type ProductService interface {
	Create(ctx context.Context, product models.Product) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id string, fields map[string]any) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	products *mongo.Collection
}

// NewProductService creates a ProductService backed by the products
// collection.
func NewProductService(db *mongo.Database) ProductService {
	return &productService{products: db.Collection("products")}
}

// Create validates the required fields, applies defaults and inserts.
func (s *productService) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	var missing []string
	if product.Name == "" {
		missing = append(missing, "name")
	}
	if product.Price == 0 {
		missing = append(missing, "price")
	}
	if len(product.Image) == 0 {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	if product.Currency == "" {
		product.Currency = models.DefaultCurrency
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	result, err := s.products.InsertOne(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	product.ID = result.InsertedID.(primitive.ObjectID)

	return &product, nil
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// Update overwrites the supplied fields on the product. The id itself
// cannot be rewritten.
func (s *productService) Update(ctx context.Context, id string, fields map[string]any) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}

	var product models.Product
	err = s.products.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProductNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &product, nil
}

// Delete removes the product. Deleting an id that no longer exists is
// not an error.
func (s *productService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}

	if _, err := s.products.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
