// Rentora | 2026
// service.go

package offer

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentora/rentora/internal/core"
)

// CommentRemover deletes every comment attached to an offer. Satisfied
// by the comment repository.
type CommentRemover interface {
	DeleteByOfferID(ctx context.Context, offerID primitive.ObjectID) (int64, error)
}

type Service struct {
	repo     Repository
	comments CommentRemover
	logger   *slog.Logger
}

func NewService(repo Repository, comments CommentRemover, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		comments: comments,
		logger:   logger.With(slog.String("component", "offer_service")),
	}
}

func (s *Service) Create(ctx context.Context, ownerID string, req CreateOfferRequest) (*Offer, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, core.ErrNotAnObjectID
	}

	o := &Offer{
		Name:            req.Name,
		Description:     req.Description,
		PublicationDate: req.PublicationDate,
		City:            req.City,
		PreviewImage:    req.PreviewImage,
		Images:          req.Images,
		Premium:         req.Premium,
		Rating:          req.Rating,
		HousingType:     req.HousingType,
		RoomCount:       req.RoomCount,
		GuestCount:      req.GuestCount,
		Cost:            req.Cost,
		Facilities:      req.Facilities,
		UserID:          owner,
		CommentCount:    0,
		Coordinates: Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		},
	}

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "offer created",
		slog.String("offer_id", created.ID.Hex()),
		slog.String("owner_id", ownerID))
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Offer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, core.ErrNotAnObjectID
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *Service) List(ctx context.Context, count int64) ([]Offer, error) {
	return s.repo.Find(ctx, count)
}

func (s *Service) PremiumByCity(ctx context.Context, city string) ([]Offer, error) {
	if !IsValidCity(city) {
		return nil, fmt.Errorf("%w: unknown city %q", core.ErrInvalidInput, city)
	}
	return s.repo.FindPremiumByCity(ctx, city)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateOfferRequest) (*Offer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, core.ErrNotAnObjectID
	}

	upd := Update{
		Name:            req.Name,
		Description:     req.Description,
		PublicationDate: req.PublicationDate,
		City:            req.City,
		PreviewImage:    req.PreviewImage,
		Images:          req.Images,
		Premium:         req.Premium,
		Rating:          req.Rating,
		HousingType:     req.HousingType,
		RoomCount:       req.RoomCount,
		GuestCount:      req.GuestCount,
		Cost:            req.Cost,
		Facilities:      req.Facilities,
	}
	if req.Coordinates != nil {
		upd.Coordinates = &Coordinates{
			Latitude:  req.Coordinates.Latitude,
			Longitude: req.Coordinates.Longitude,
		}
	}

	return s.repo.UpdateByID(ctx, oid, upd)
}

// Delete removes the offer and then its comments. The two writes are
// separate operations: a crash in between leaves orphaned comments,
// which only ever surface through the deleted offer's id.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return core.ErrNotAnObjectID
	}

	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return core.ErrNotFound
	}

	removed, err := s.comments.DeleteByOfferID(ctx, oid)
	if err != nil {
		return fmt.Errorf("cascading comment delete for offer %s: %w", id, err)
	}

	s.logger.InfoContext(ctx, "offer deleted",
		slog.String("offer_id", id),
		slog.Int64("comments_removed", removed))
	return nil
}

func (s *Service) SetPreviewImage(ctx context.Context, id, filename string) (*Offer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, core.ErrNotAnObjectID
	}
	return s.repo.UpdateByID(ctx, oid, Update{PreviewImage: &filename})
}

func (s *Service) AddImage(ctx context.Context, id, filename string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return core.ErrNotAnObjectID
	}
	return s.repo.AddImage(ctx, oid, filename)
}

func (s *Service) RemoveImage(ctx context.Context, id, filename string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return core.ErrNotAnObjectID
	}
	return s.repo.RemoveImage(ctx, oid, filename)
}

// ExistsByID reports whether an offer exists. A malformed id simply
// does not exist.
func (s *Service) ExistsByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	return s.repo.ExistsByID(ctx, oid)
}
