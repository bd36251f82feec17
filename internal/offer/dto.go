// Rentora | 2026
// dto.go

package offer

import (
	"time"

	"github.com/rentora/rentora/internal/core"
)

type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude"  validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

type CreateOfferRequest struct {
	Name            string          `json:"name" validate:"required,min=10,max=100"`
	Description     string          `json:"description" validate:"required,min=20,max=1024"`
	PublicationDate time.Time       `json:"publicationDate" validate:"required"`
	City            string          `json:"city" validate:"required,oneof=Paris Cologne Brussels Amsterdam Hamburg Dusseldorf"`
	PreviewImage    string          `json:"previewImage" validate:"omitempty,max=256"`
	Images          []string        `json:"images" validate:"required,len=6"`
	Premium         bool            `json:"premium"`
	Rating          float64         `json:"rating" validate:"required,min=1,max=5"`
	HousingType     string          `json:"housingType" validate:"required,oneof=apartment house room hotel"`
	RoomCount       int             `json:"roomCount" validate:"required,min=1,max=8"`
	GuestCount      int             `json:"guestCount" validate:"required,min=1,max=10"`
	Cost            int             `json:"cost" validate:"required,min=100,max=100000"`
	Facilities      []string        `json:"facilities" validate:"required,min=1,dive,oneof='Breakfast' 'Air conditioning' 'Laptop friendly workspace' 'Baby seat' 'Washer' 'Towels' 'Fridge'"`
	Coordinates     *CoordinatesDTO `json:"coordinates" validate:"required"`
}

// UpdateOfferRequest carries a partial update. Nil fields are left
// untouched by the repository.
type UpdateOfferRequest struct {
	Name            *string         `json:"name,omitempty" validate:"omitempty,min=10,max=100"`
	Description     *string         `json:"description,omitempty" validate:"omitempty,min=20,max=1024"`
	PublicationDate *time.Time      `json:"publicationDate,omitempty"`
	City            *string         `json:"city,omitempty" validate:"omitempty,oneof=Paris Cologne Brussels Amsterdam Hamburg Dusseldorf"`
	PreviewImage    *string         `json:"previewImage,omitempty" validate:"omitempty,max=256"`
	Images          *[]string       `json:"images,omitempty" validate:"omitempty,len=6"`
	Premium         *bool           `json:"premium,omitempty"`
	Rating          *float64        `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	HousingType     *string         `json:"housingType,omitempty" validate:"omitempty,oneof=apartment house room hotel"`
	RoomCount       *int            `json:"roomCount,omitempty" validate:"omitempty,min=1,max=8"`
	GuestCount      *int            `json:"guestCount,omitempty" validate:"omitempty,min=1,max=10"`
	Cost            *int            `json:"cost,omitempty" validate:"omitempty,min=100,max=100000"`
	Facilities      *[]string       `json:"facilities,omitempty" validate:"omitempty,min=1,dive,oneof='Breakfast' 'Air conditioning' 'Laptop friendly workspace' 'Baby seat' 'Washer' 'Towels' 'Fridge'"`
	Coordinates     *CoordinatesDTO `json:"coordinates,omitempty"`
}

type RemoveImageRequest struct {
	Image string `json:"image" validate:"required"`
}

// OfferResponse is the full detail shape.
type OfferResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	PublicationDate time.Time      `json:"createdAt"`
	City            string         `json:"city"`
	PreviewImage    string         `json:"previewImage"`
	Images          []string       `json:"images"`
	Premium         bool           `json:"premium"`
	Favorite        bool           `json:"favorite"`
	Rating          float64        `json:"rating"`
	HousingType     string         `json:"housingType"`
	RoomCount       int            `json:"roomCount"`
	GuestCount      int            `json:"guestCount"`
	Cost            int            `json:"cost"`
	Facilities      []string       `json:"facilities"`
	UserID          string         `json:"userId"`
	CommentCount    int            `json:"commentCount"`
	Coordinates     CoordinatesDTO `json:"coordinates"`
}

// OfferListItemResponse is the condensed listing shape.
type OfferListItemResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	PublicationDate time.Time `json:"createdAt"`
	City            string    `json:"city"`
	PreviewImage    string    `json:"previewImage"`
	Premium         bool      `json:"premium"`
	Favorite        bool      `json:"favorite"`
	Rating          float64   `json:"rating"`
	HousingType     string    `json:"housingType"`
	Cost            int       `json:"cost"`
	CommentCount    int       `json:"commentCount"`
}

// FavoriteOfferResponse is the shape of the caller's favorites list.
// Favorite is always true by construction.
type FavoriteOfferResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PublicationDate time.Time `json:"createdAt"`
	City            string    `json:"city"`
	PreviewImage    string    `json:"previewImage"`
	Premium         bool      `json:"premium"`
	Favorite        bool      `json:"favorite"`
	Rating          float64   `json:"rating"`
	HousingType     string    `json:"housingType"`
	Cost            int       `json:"cost"`
	CommentCount    int       `json:"commentCount"`
}

type UploadPreviewResponse struct {
	PreviewImage string `json:"previewImage"`
}

func ToOfferResponse(o *Offer, favorite bool, files *core.FileResolver) OfferResponse {
	return OfferResponse{
		ID:              o.ID.Hex(),
		Name:            o.Name,
		Description:     o.Description,
		PublicationDate: o.PublicationDate,
		City:            o.City,
		PreviewImage:    files.Resolve(o.PreviewImage),
		Images:          files.ResolveAll(o.Images),
		Premium:         o.Premium,
		Favorite:        favorite,
		Rating:          o.Rating,
		HousingType:     o.HousingType,
		RoomCount:       o.RoomCount,
		GuestCount:      o.GuestCount,
		Cost:            o.Cost,
		Facilities:      o.Facilities,
		UserID:          o.UserID.Hex(),
		CommentCount:    o.CommentCount,
		Coordinates: CoordinatesDTO{
			Latitude:  o.Coordinates.Latitude,
			Longitude: o.Coordinates.Longitude,
		},
	}
}

// ToOfferListResponse renders listings. favorites may be nil for an
// anonymous viewer, in which case every flag is false.
func ToOfferListResponse(offers []Offer, favorites map[string]bool, files *core.FileResolver) []OfferListItemResponse {
	items := make([]OfferListItemResponse, 0, len(offers))
	for i := range offers {
		o := &offers[i]
		items = append(items, OfferListItemResponse{
			ID:              o.ID.Hex(),
			Name:            o.Name,
			PublicationDate: o.PublicationDate,
			City:            o.City,
			PreviewImage:    files.Resolve(o.PreviewImage),
			Premium:         o.Premium,
			Favorite:        favorites[o.ID.Hex()],
			Rating:          o.Rating,
			HousingType:     o.HousingType,
			Cost:            o.Cost,
			CommentCount:    o.CommentCount,
		})
	}
	return items
}

func ToFavoriteOfferResponses(offers []Offer, files *core.FileResolver) []FavoriteOfferResponse {
	items := make([]FavoriteOfferResponse, 0, len(offers))
	for i := range offers {
		o := &offers[i]
		items = append(items, FavoriteOfferResponse{
			ID:              o.ID.Hex(),
			Name:            o.Name,
			Description:     o.Description,
			PublicationDate: o.PublicationDate,
			City:            o.City,
			PreviewImage:    files.Resolve(o.PreviewImage),
			Premium:         o.Premium,
			Favorite:        true,
			Rating:          o.Rating,
			HousingType:     o.HousingType,
			Cost:            o.Cost,
			CommentCount:    o.CommentCount,
		})
	}
	return items
}
