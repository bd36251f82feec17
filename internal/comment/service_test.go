// Rentora | 2026
// service_test.go

package comment

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rentora/rentora/internal/core"
)

type stubRepository struct {
	byOffer map[primitive.ObjectID][]Comment
}

func newStubRepository() *stubRepository {
	return &stubRepository{byOffer: map[primitive.ObjectID][]Comment{}}
}

func (s *stubRepository) Create(_ context.Context, c *Comment) (*Comment, error) {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()
	s.byOffer[c.OfferID] = append(s.byOffer[c.OfferID], *c)
	return c, nil
}

func (s *stubRepository) FindByOfferID(_ context.Context, offerID primitive.ObjectID) ([]Comment, error) {
	comments := s.byOffer[offerID]
	if len(comments) > ListLimit {
		comments = comments[:ListLimit]
	}
	return comments, nil
}

func (s *stubRepository) DeleteByOfferID(_ context.Context, offerID primitive.ObjectID) (int64, error) {
	removed := int64(len(s.byOffer[offerID]))
	delete(s.byOffer, offerID)
	return removed, nil
}

func (s *stubRepository) EnsureIndexes(context.Context) error { return nil }

type stubCounter struct {
	bumps int
	err   error
}

func (s *stubCounter) IncrementCommentCount(context.Context, primitive.ObjectID) error {
	if s.err != nil {
		return s.err
	}
	s.bumps++
	return nil
}

func newTestService(repo Repository, counter OfferCounter) *Service {
	return NewService(repo, counter, slog.New(slog.DiscardHandler))
}

func TestCreateBumpsOfferCounter(t *testing.T) {
	repo := newStubRepository()
	counter := &stubCounter{}
	svc := newTestService(repo, counter)

	offerID := primitive.NewObjectID().Hex()
	userID := primitive.NewObjectID().Hex()

	created, err := svc.Create(context.Background(), offerID, userID, CreateCommentRequest{
		Text:   "Great location, spotless apartment.",
		Rating: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.Rating)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 1, counter.bumps)
}

func TestCreateSurvivesCounterFailure(t *testing.T) {
	repo := newStubRepository()
	counter := &stubCounter{err: errors.New("offer collection unavailable")}
	svc := newTestService(repo, counter)

	offerID := primitive.NewObjectID().Hex()
	userID := primitive.NewObjectID().Hex()

	created, err := svc.Create(context.Background(), offerID, userID, CreateCommentRequest{
		Text:   "Great location, spotless apartment.",
		Rating: 4,
	})
	require.NoError(t, err, "the comment must be kept even when the counter bump fails")
	assert.NotNil(t, created)
}

func TestCreateRejectsMalformedIDs(t *testing.T) {
	svc := newTestService(newStubRepository(), &stubCounter{})

	_, err := svc.Create(context.Background(), "nope", primitive.NewObjectID().Hex(), CreateCommentRequest{
		Text:   "Great location, spotless apartment.",
		Rating: 4,
	})
	assert.ErrorIs(t, err, core.ErrNotAnObjectID)

	_, err = svc.Create(context.Background(), primitive.NewObjectID().Hex(), "nope", CreateCommentRequest{
		Text:   "Great location, spotless apartment.",
		Rating: 4,
	})
	assert.ErrorIs(t, err, core.ErrNotAnObjectID)
}

func TestListByOffer(t *testing.T) {
	repo := newStubRepository()
	svc := newTestService(repo, &stubCounter{})

	offerID := primitive.NewObjectID()
	userID := primitive.NewObjectID().Hex()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), offerID.Hex(), userID, CreateCommentRequest{
			Text:   "Great location, spotless apartment.",
			Rating: 4,
		})
		require.NoError(t, err)
	}

	comments, err := svc.ListByOffer(context.Background(), offerID.Hex())
	require.NoError(t, err)
	assert.Len(t, comments, 3)
}

func TestDeleteByOfferID(t *testing.T) {
	repo := newStubRepository()
	svc := newTestService(repo, &stubCounter{})

	offerID := primitive.NewObjectID()
	userID := primitive.NewObjectID().Hex()

	_, err := svc.Create(context.Background(), offerID.Hex(), userID, CreateCommentRequest{
		Text:   "Great location, spotless apartment.",
		Rating: 4,
	})
	require.NoError(t, err)

	removed, err := svc.DeleteByOfferID(context.Background(), offerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	comments, err := svc.ListByOffer(context.Background(), offerID.Hex())
	require.NoError(t, err)
	assert.Empty(t, comments)
}
