// Rentora | 2026
// repository.go

package offer

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

// Update carries the repository-level partial update. Nil fields are
// skipped when building the $set document.
type Update struct {
	Name            *string
	Description     *string
	PublicationDate *time.Time
	City            *string
	PreviewImage    *string
	Images          *[]string
	Premium         *bool
	Rating          *float64
	HousingType     *string
	RoomCount       *int
	GuestCount      *int
	Cost            *int
	Facilities      *[]string
	Coordinates     *Coordinates
}

type Repository interface {
	Create(ctx context.Context, o *Offer) (*Offer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Offer, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Offer, error)
	Find(ctx context.Context, limit int64) ([]Offer, error)
	FindPremiumByCity(ctx context.Context, city string) ([]Offer, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, upd Update) (*Offer, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	AddImage(ctx context.Context, id primitive.ObjectID, filename string) error
	RemoveImage(ctx context.Context, id primitive.ObjectID, filename string) error
	IncrementCommentCount(ctx context.Context, id primitive.ObjectID) error
	ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewRepository(db *core.Database) Repository {
	return &mongoRepository{collection: db.Collection(CollectionName)}
}

func (r *mongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "premium", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("creating offer indexes: %w", err)
	}
	return nil
}

func (r *mongoRepository) Create(ctx context.Context, o *Offer) (*Offer, error) {
	now := time.Now().UTC()
	o.ID = primitive.NewObjectID()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, o); err != nil {
		return nil, fmt.Errorf("inserting offer: %w", err)
	}
	return o, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Offer, error) {
	var o Offer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("finding offer %s: %w", id.Hex(), err)
	}
	return &o, nil
}

func (r *mongoRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Offer, error) {
	if len(ids) == 0 {
		return []Offer{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("finding offers by ids: %w", err)
	}
	return decodeOffers(ctx, cursor)
}

func (r *mongoRepository) Find(ctx context.Context, limit int64) ([]Offer, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing offers: %w", err)
	}
	return decodeOffers(ctx, cursor)
}

func (r *mongoRepository) FindPremiumByCity(ctx context.Context, city string) ([]Offer, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(PremiumListLimit)

	cursor, err := r.collection.Find(ctx, bson.M{"city": city, "premium": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing premium offers for %s: %w", city, err)
	}
	return decodeOffers(ctx, cursor)
}

func (r *mongoRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, upd Update) (*Offer, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.PublicationDate != nil {
		set["publicationDate"] = *upd.PublicationDate
	}
	if upd.City != nil {
		set["city"] = *upd.City
	}
	if upd.PreviewImage != nil {
		set["previewImage"] = *upd.PreviewImage
	}
	if upd.Images != nil {
		set["images"] = *upd.Images
	}
	if upd.Premium != nil {
		set["premium"] = *upd.Premium
	}
	if upd.Rating != nil {
		set["rating"] = *upd.Rating
	}
	if upd.HousingType != nil {
		set["housingType"] = *upd.HousingType
	}
	if upd.RoomCount != nil {
		set["roomCount"] = *upd.RoomCount
	}
	if upd.GuestCount != nil {
		set["guestCount"] = *upd.GuestCount
	}
	if upd.Cost != nil {
		set["cost"] = *upd.Cost
	}
	if upd.Facilities != nil {
		set["facilities"] = *upd.Facilities
	}
	if upd.Coordinates != nil {
		set["coordinates"] = *upd.Coordinates
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var o Offer
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("updating offer %s: %w", id.Hex(), err)
	}
	return &o, nil
}

func (r *mongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("deleting offer %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}

func (r *mongoRepository) AddImage(ctx context.Context, id primitive.ObjectID, filename string) error {
	update := bson.M{
		"$push": bson.M{"images": filename},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("adding image to offer %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *mongoRepository) RemoveImage(ctx context.Context, id primitive.ObjectID, filename string) error {
	update := bson.M{
		"$pull": bson.M{"images": filename},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("removing image from offer %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

// IncrementCommentCount bumps the denormalized comment counter by one.
func (r *mongoRepository) IncrementCommentCount(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$inc": bson.M{"commentCount": 1}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("incrementing comment count for %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *mongoRepository) ExistsByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("checking offer %s: %w", id.Hex(), err)
	}
	return count > 0, nil
}

func decodeOffers(ctx context.Context, cursor *mongo.Cursor) ([]Offer, error) {
	defer cursor.Close(ctx)

	offers := []Offer{}
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("decoding offers: %w", err)
	}
	return offers, nil
}
