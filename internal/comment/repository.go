// Rentora | 2026
// repository.go

package comment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rentora/rentora/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) (*Comment, error)
	FindByOfferID(ctx context.Context, offerID primitive.ObjectID) ([]Comment, error)
	DeleteByOfferID(ctx context.Context, offerID primitive.ObjectID) (int64, error)
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
		Keys: bson.D{{Key: "offerId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating comment indexes: %w", err)
	}
	return nil
}

func (r *mongoRepository) Create(ctx context.Context, c *Comment) (*Comment, error) {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, c); err != nil {
		return nil, fmt.Errorf("inserting comment: %w", err)
	}
	return c, nil
}

// FindByOfferID returns the offer's comments oldest first, capped at
// ListLimit.
func (r *mongoRepository) FindByOfferID(ctx context.Context, offerID primitive.ObjectID) ([]Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(ListLimit)

	cursor, err := r.collection.Find(ctx, bson.M{"offerId": offerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing comments for offer %s: %w", offerID.Hex(), err)
	}
	defer cursor.Close(ctx)

	comments := []Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decoding comments: %w", err)
	}
	return comments, nil
}

func (r *mongoRepository) DeleteByOfferID(ctx context.Context, offerID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"offerId": offerID})
	if err != nil {
		return 0, fmt.Errorf("deleting comments for offer %s: %w", offerID.Hex(), err)
	}
	return res.DeletedCount, nil
}
