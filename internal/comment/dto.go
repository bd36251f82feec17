// Rentora | 2026
// dto.go

package comment

import "time"

type CreateCommentRequest struct {
	Text   string `json:"text" validate:"required,min=5,max=1024"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	OfferID   string    `json:"offerId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.Hex(),
		Text:      c.Text,
		Rating:    c.Rating,
		OfferID:   c.OfferID.Hex(),
		UserID:    c.UserID.Hex(),
		CreatedAt: c.CreatedAt,
	}
}

func ToCommentResponses(comments []Comment) []CommentResponse {
	items := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, ToCommentResponse(&comments[i]))
	}
	return items
}
