// Rentora | 2026
// entity.go

package comment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "comments"

// ListLimit caps a single offer's comment listing.
const ListLimit = 50

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"text"`
	Rating    int                `bson:"rating"`
	OfferID   primitive.ObjectID `bson:"offerId"`
	UserID    primitive.ObjectID `bson:"userId"`
	CreatedAt time.Time          `bson:"createdAt"`
}
