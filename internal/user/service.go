// Rentora | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentora/rentora/internal/core"
	"github.com/rentora/rentora/internal/offer"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// OfferFinder resolves favorite ids into offers. Satisfied by the
// offer repository.
type OfferFinder interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]offer.Offer, error)
}

// TokenIssuer is the slice of the token manager the user service
// needs.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
	Revoke(token string)
}

type Service struct {
	repo   Repository
	offers OfferFinder
	tokens TokenIssuer
	salt   string
	logger *slog.Logger
}

func NewService(repo Repository, offers OfferFinder, tokens TokenIssuer, salt string, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		offers: offers,
		tokens: tokens,
		salt:   salt,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

// Register creates a user with the default avatar. An already-taken
// email is rejected; the unique index backs up the pre-check against
// concurrent registrations.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	_, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	u := &User{
		Email:      req.Email,
		Name:       req.Name,
		AvatarPath: DefaultAvatar,
		Type:       req.Type,
		Password:   core.HashPassword(req.Password, s.salt),
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.Hex()),
		slog.String("type", created.Type))
	return created, nil
}

// Login verifies the credentials and issues a token. The same error
// comes back whether the email is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !core.VerifyPassword(req.Password, s.salt, u.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID.Hex(), u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", u.ID.Hex()))
	return u, token, nil
}

// CheckAuth resolves the authenticated caller by the email claim.
func (s *Service) CheckAuth(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}

// Logout revokes the presented token for the lifetime of the process.
func (s *Service) Logout(token string) {
	s.tokens.Revoke(token)
}

// Favorites resolves the caller's favorite ids into offers. Ids whose
// offer has since been deleted are silently dropped.
func (s *Service) Favorites(ctx context.Context, userID string) ([]offer.Offer, error) {
	u, err := s.findByHex(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.offers.FindByIDs(ctx, u.Favorites)
}

// FavoriteSet returns the caller's favorite ids keyed by hex, for
// deriving per-viewer favorite flags.
func (s *Service) FavoriteSet(ctx context.Context, userID string) (map[string]bool, error) {
	u, err := s.findByHex(ctx, userID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(u.Favorites))
	for _, id := range u.Favorites {
		set[id.Hex()] = true
	}
	return set, nil
}

func (s *Service) AddFavorite(ctx context.Context, userID, offerID string) error {
	uid, oid, err := parseIDPair(userID, offerID)
	if err != nil {
		return err
	}
	return s.repo.AddFavorite(ctx, uid, oid)
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, offerID string) error {
	uid, oid, err := parseIDPair(userID, offerID)
	if err != nil {
		return err
	}
	return s.repo.RemoveFavorite(ctx, uid, oid)
}

func (s *Service) UpdateAvatar(ctx context.Context, userID, filename string) (*User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, core.ErrNotAnObjectID
	}
	return s.repo.UpdateAvatar(ctx, uid, filename)
}

func (s *Service) findByHex(ctx context.Context, userID string) (*User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, core.ErrNotAnObjectID
	}
	return s.repo.FindByID(ctx, uid)
}

func parseIDPair(userID, offerID string) (primitive.ObjectID, primitive.ObjectID, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, core.ErrNotAnObjectID
	}
	oid, err := primitive.ObjectIDFromHex(offerID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, core.ErrNotAnObjectID
	}
	return uid, oid, nil
}
