package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/keepnote/notes-api/internal/core/domain"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Name:         mu.Name,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		CreatedAt:    mu.CreatedAt,
		UpdatedAt:    mu.UpdatedAt,
	}
}

// Create inserts a new user. A duplicate-key violation on the unique email
// index is translated to domain.ErrEmailTaken, never a generic failure.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert user: unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

// FindByID resolves a user by the hex ID carried in a verified token. An ID
// that is not a well-formed ObjectID cannot match any record and maps to the
// same not-found outcome.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toDomain(), nil
}

// EnsureIndexes creates the unique index on email. Registration correctness
// depends on it: the insert path relies on the constraint violation to
// resolve the duplicate-registration race.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
