// Rentora | 2026
// entity.go

package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "users"

const (
	TypeRegular = "regular"
	TypePro     = "pro"
)

// DefaultAvatar is assigned at registration and served from the static
// route rather than the upload route.
const DefaultAvatar = "default-avatar.jpg"

type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Email      string               `bson:"email"`
	Name       string               `bson:"name"`
	AvatarPath string               `bson:"avatarPath"`
	Type       string               `bson:"type"`
	Password   string               `bson:"password"`
	Favorites  []primitive.ObjectID `bson:"favorites"`
	CreatedAt  time.Time            `bson:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt"`
}

func (u *User) IsPro() bool {
	return u.Type == TypePro
}
