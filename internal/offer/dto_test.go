// Rentora | 2026
// dto_test.go

package offer

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentora/rentora/internal/core"
)

func validCreateRequest() CreateOfferRequest {
	return CreateOfferRequest{
		Name:            "Canal View Loft",
		Description:     "Bright loft overlooking the canal, five minutes from the station.",
		PublicationDate: time.Now(),
		City:            CityAmsterdam,
		PreviewImage:    "preview.jpg",
		Images:          []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"},
		Premium:         true,
		Rating:          4.5,
		HousingType:     HousingApartment,
		RoomCount:       3,
		GuestCount:      4,
		Cost:            12000,
		Facilities:      []string{"Breakfast", "Air conditioning"},
		Coordinates:     &CoordinatesDTO{Latitude: 52.370216, Longitude: 4.895168},
	}
}

func TestCreateOfferRequestValid(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	assert.NoError(t, v.Struct(validCreateRequest()))
}

func TestCreateOfferRequestRejectsBadFields(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	tests := []struct {
		name   string
		mutate func(*CreateOfferRequest)
	}{
		{"short name", func(r *CreateOfferRequest) { r.Name = "Loft" }},
		{"short description", func(r *CreateOfferRequest) { r.Description = "Too short" }},
		{"unknown city", func(r *CreateOfferRequest) { r.City = "Berlin" }},
		{"five images", func(r *CreateOfferRequest) { r.Images = r.Images[:5] }},
		{"seven images", func(r *CreateOfferRequest) { r.Images = append(r.Images, "7.jpg") }},
		{"rating too low", func(r *CreateOfferRequest) { r.Rating = 0.5 }},
		{"rating too high", func(r *CreateOfferRequest) { r.Rating = 5.5 }},
		{"unknown housing", func(r *CreateOfferRequest) { r.HousingType = "villa" }},
		{"too many rooms", func(r *CreateOfferRequest) { r.RoomCount = 9 }},
		{"too many guests", func(r *CreateOfferRequest) { r.GuestCount = 11 }},
		{"cost too low", func(r *CreateOfferRequest) { r.Cost = 99 }},
		{"cost too high", func(r *CreateOfferRequest) { r.Cost = 100001 }},
		{"empty facilities", func(r *CreateOfferRequest) { r.Facilities = []string{} }},
		{"unknown facility", func(r *CreateOfferRequest) { r.Facilities = []string{"Sauna"} }},
		{"missing coordinates", func(r *CreateOfferRequest) { r.Coordinates = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			assert.Error(t, v.Struct(req))
		})
	}
}

func TestCreateOfferRequestAcceptsMultiWordFacility(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	req := validCreateRequest()
	req.Facilities = []string{"Laptop friendly workspace", "Baby seat"}

	assert.NoError(t, v.Struct(req))
}

func TestUpdateOfferRequestPartial(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// empty update is valid; nothing changes
	assert.NoError(t, v.Struct(UpdateOfferRequest{}))

	cost := 500
	assert.NoError(t, v.Struct(UpdateOfferRequest{Cost: &cost}))

	badCost := 5
	assert.Error(t, v.Struct(UpdateOfferRequest{Cost: &badCost}))

	fiveImages := []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg"}
	assert.Error(t, v.Struct(UpdateOfferRequest{Images: &fiveImages}))
}

func sampleOffer(t *testing.T) *Offer {
	t.Helper()

	owner, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	return &Offer{
		ID:              primitive.NewObjectID(),
		Name:            "Canal View Loft",
		Description:     "Bright loft overlooking the canal, five minutes from the station.",
		PublicationDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		City:            CityAmsterdam,
		PreviewImage:    "preview.jpg",
		Images:          []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"},
		Premium:         true,
		Rating:          4.5,
		HousingType:     HousingApartment,
		RoomCount:       3,
		GuestCount:      4,
		Cost:            12000,
		Facilities:      []string{"Breakfast"},
		UserID:          owner,
		CommentCount:    7,
	}
}

func TestToOfferResponse(t *testing.T) {
	files := core.NewFileResolver("/static", "/upload")
	o := sampleOffer(t)

	resp := ToOfferResponse(o, true, files)

	assert.Equal(t, o.ID.Hex(), resp.ID)
	assert.Equal(t, "507f1f77bcf86cd799439011", resp.UserID)
	assert.Equal(t, "/upload/preview.jpg", resp.PreviewImage)
	assert.Len(t, resp.Images, GalleryImageCount)
	assert.True(t, resp.Favorite)
	assert.Equal(t, o.PublicationDate, resp.PublicationDate)
}

func TestToOfferListResponseDerivesFavorites(t *testing.T) {
	files := core.NewFileResolver("/static", "/upload")
	first := sampleOffer(t)
	second := sampleOffer(t)
	second.ID = primitive.NewObjectID()

	favorites := map[string]bool{first.ID.Hex(): true}

	items := ToOfferListResponse([]Offer{*first, *second}, favorites, files)
	require.Len(t, items, 2)
	assert.True(t, items[0].Favorite)
	assert.False(t, items[1].Favorite)

	// anonymous viewer: nil set, every flag false
	items = ToOfferListResponse([]Offer{*first}, nil, files)
	assert.False(t, items[0].Favorite)
}

func TestToFavoriteOfferResponsesForcesFlag(t *testing.T) {
	files := core.NewFileResolver("/static", "/upload")
	o := sampleOffer(t)

	items := ToFavoriteOfferResponses([]Offer{*o}, files)
	require.Len(t, items, 1)
	assert.True(t, items[0].Favorite)
	assert.Equal(t, o.Description, items[0].Description)
}
