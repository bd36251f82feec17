// Rentora | 2026
// service.go

package comment

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentora/rentora/internal/core"
)

// OfferCounter bumps the denormalized comment counter on an offer.
// Satisfied by the offer repository.
type OfferCounter interface {
	IncrementCommentCount(ctx context.Context, id primitive.ObjectID) error
}

type Service struct {
	repo   Repository
	offers OfferCounter
	logger *slog.Logger
}

func NewService(repo Repository, offers OfferCounter, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		offers: offers,
		logger: logger.With(slog.String("component", "comment_service")),
	}
}

// Create stores the comment and bumps the offer's counter. The counter
// write is best-effort: the comment stays even if the bump fails, and
// the drift is only ever visible in the denormalized count.
func (s *Service) Create(ctx context.Context, offerID, userID string, req CreateCommentRequest) (*Comment, error) {
	oid, err := primitive.ObjectIDFromHex(offerID)
	if err != nil {
		return nil, core.ErrNotAnObjectID
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, core.ErrNotAnObjectID
	}

	created, err := s.repo.Create(ctx, &Comment{
		Text:    req.Text,
		Rating:  req.Rating,
		OfferID: oid,
		UserID:  uid,
	})
	if err != nil {
		return nil, err
	}

	if err := s.offers.IncrementCommentCount(ctx, oid); err != nil {
		s.logger.WarnContext(ctx, "comment counter bump failed",
			slog.String("offer_id", offerID),
			slog.String("error", err.Error()))
	}

	return created, nil
}

func (s *Service) ListByOffer(ctx context.Context, offerID string) ([]Comment, error) {
	oid, err := primitive.ObjectIDFromHex(offerID)
	if err != nil {
		return nil, core.ErrNotAnObjectID
	}
	return s.repo.FindByOfferID(ctx, oid)
}

// DeleteByOfferID removes every comment attached to an offer and
// reports how many went.
func (s *Service) DeleteByOfferID(ctx context.Context, offerID primitive.ObjectID) (int64, error) {
	return s.repo.DeleteByOfferID(ctx, offerID)
}
