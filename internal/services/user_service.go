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
	"golang.org/x/crypto/bcrypt"

	"example.com/shop-backend/internal/models"
)

// bcrypt cost used when hashing registration passwords.
const passwordCost = 10

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	UserName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
}

// UserService is the credential store: it owns user records, their
// password hashes and the profile fields around them.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]any) (*models.User, error)
	DeleteAccount(ctx context.Context, id, password string) error
	SetImage(ctx context.Context, id, fileName string) (*models.User, error)
	SetBanner(ctx context.Context, id, fileName string) (*models.User, error)
}

type userService struct {
	users      *mongo.Collection
	adminEmail string
}

// NewUserService creates a UserService backed by the users collection.
// adminEmail names the one account that can never be deleted.
func NewUserService(db *mongo.Database, adminEmail string) UserService {
	return &userService{
		users:      db.Collection("users"),
		adminEmail: adminEmail,
	}
}

// noPassword projects the password hash out of read results.
var noPassword = options.FindOne().SetProjection(bson.M{"password": 0})

// Register stores a new user with a hashed password. The email check is
// a lookup before the insert, not a storage constraint; two concurrent
// registrations for the same email can both pass it.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := requireFields(map[string]string{
		"userName": in.UserName,
		"email":    in.Email,
		"password": in.Password,
	}); err != nil {
		return nil, err
	}

	err := s.users.FindOne(ctx, bson.M{"email": in.Email}).Err()
	if err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		UserName:      in.UserName,
		Email:         in.Email,
		Password:      string(hashed),
		PhoneNumber:   in.PhoneNumber,
		Address:       in.Address,
		Cart:          []models.CartLine{},
		SavedProducts: []models.CartLine{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	return user, nil
}

// Login resolves the user by email and verifies the password against
// the stored hash. The returned record excludes the hash.
func (s *userService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	return &user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": objID}, noPassword).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// profileFields are the keys UpdateProfile accepts. Everything else,
// the password hash in particular, is dropped from the update.
var profileFields = map[string]bool{
	"userName":    true,
	"email":       true,
	"PhoneNumber": true,
	"Address":     true,
}

// UpdateProfile merges the supplied fields into the record. Keys not
// present in the input keep their stored values.
func (s *userService) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		if profileFields[k] {
			set[k] = v
		}
	}

	var user models.User
	err = s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"password": 0}),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}

// DeleteAccount re-verifies the supplied password before deleting. The
// admin account is refused even with the correct password.
func (s *userService) DeleteAccount(ctx context.Context, id, password string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrUserNotFound
	} else if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	if user.Email == s.adminEmail {
		return ErrAdminAccount
	}

	if _, err := s.users.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (s *userService) SetImage(ctx context.Context, id, fileName string) (*models.User, error) {
	return s.setField(ctx, id, "image", fileName)
}

func (s *userService) SetBanner(ctx context.Context, id, fileName string) (*models.User, error) {
	return s.setField(ctx, id, "banner", fileName)
}

func (s *userService) setField(ctx context.Context, id, field, value string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err = s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{field: value, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"password": 0}),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}
