// Rentora | 2026
// entity.go

package offer

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "offers"

const (
	// GalleryImageCount is the fixed size of an offer's image gallery.
	GalleryImageCount = 6

	// DefaultListLimit bounds an unqualified listing query.
	DefaultListLimit = 60

	// MaxListLimit caps a caller-supplied count.
	MaxListLimit = 100

	// PremiumListLimit caps the premium-by-city listing.
	PremiumListLimit = 3
)

const (
	CityParis      = "Paris"
	CityCologne    = "Cologne"
	CityBrussels   = "Brussels"
	CityAmsterdam  = "Amsterdam"
	CityHamburg    = "Hamburg"
	CityDusseldorf = "Dusseldorf"
)

var Cities = []string{
	CityParis,
	CityCologne,
	CityBrussels,
	CityAmsterdam,
	CityHamburg,
	CityDusseldorf,
}

func IsValidCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}

const (
	HousingApartment = "apartment"
	HousingHouse     = "house"
	HousingRoom      = "room"
	HousingHotel     = "hotel"
)

var Facilities = []string{
	"Breakfast",
	"Air conditioning",
	"Laptop friendly workspace",
	"Baby seat",
	"Washer",
	"Towels",
	"Fridge",
}

type Coordinates struct {
	Latitude  float64 `bson:"latitude"  json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

type Offer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	PublicationDate time.Time          `bson:"publicationDate"`
	City            string             `bson:"city"`
	PreviewImage    string             `bson:"previewImage"`
	Images          []string           `bson:"images"`
	Premium         bool               `bson:"premium"`
	Rating          float64            `bson:"rating"`
	HousingType     string             `bson:"housingType"`
	RoomCount       int                `bson:"roomCount"`
	GuestCount      int                `bson:"guestCount"`
	Cost            int                `bson:"cost"`
	Facilities      []string           `bson:"facilities"`
	UserID          primitive.ObjectID `bson:"userId"`
	CommentCount    int                `bson:"commentCount"`
	Coordinates     Coordinates        `bson:"coordinates"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// OwnerHex returns the owning user id in the form handlers compare
// against token claims.
func (o *Offer) OwnerHex() string {
	return o.UserID.Hex()
}
