// Rentora | 2026
// repository.go

package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentora/rentora/internal/core"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateAvatar(ctx context.Context, id primitive.ObjectID, filename string) (*User, error)
	AddFavorite(ctx context.Context, userID, offerID primitive.ObjectID) error
	RemoveFavorite(ctx context.Context, userID, offerID primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &mongoRepository{collection: db.Collection(CollectionName)}
}

func (r *mongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}
	return nil
}

func (r *mongoRepository) Create(ctx context.Context, u *User) (*User, error) {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Favorites == nil {
		u.Favorites = []primitive.ObjectID{}
	}

	if _, err := r.collection.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, core.ErrDuplicateKey
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var u User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("finding user %s: %w", id.Hex(), err)
	}
	return &u, nil
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return &u, nil
}

func (r *mongoRepository) UpdateAvatar(ctx context.Context, id primitive.ObjectID, filename string) (*User, error) {
	update := bson.M{"$set": bson.M{
		"avatarPath": filename,
		"updatedAt":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("updating avatar for %s: %w", id.Hex(), err)
	}
	return &u, nil
}

// AddFavorite uses $addToSet, so repeating the call is a no-op.
func (r *mongoRepository) AddFavorite(ctx context.Context, userID, offerID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"favorites": offerID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("adding favorite for %s: %w", userID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

// RemoveFavorite uses $pull; removing an id that is not present is a
// no-op.
func (r *mongoRepository) RemoveFavorite(ctx context.Context, userID, offerID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"favorites": offerID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("removing favorite for %s: %w", userID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}
