// Rentora | 2026
// handler.go

package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rentora/rentora/internal/core"
	"github.com/rentora/rentora/internal/middleware"
)

type Handler struct {
	service     *Service
	validator   *validator.Validate
	offerExists middleware.ExistenceFunc
}

func NewHandler(service *Service, offerExists middleware.ExistenceFunc) *Handler {
	return &Handler{
		service:     service,
		validator:   validator.New(validator.WithRequiredStructEnabled()),
		offerExists: offerExists,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Route("/comments/{offerId}", func(r chi.Router) {
		r.Use(
			middleware.ValidateObjectID("offerId"),
			middleware.RequireExists("offerId", "offer", h.offerExists),
		)
		r.Get("/", h.Index)
		r.With(authenticate).Post("/", h.Create)
	})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListByOffer(r.Context(), chi.URLParam(r, "offerId"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToCommentResponses(comments))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationFailedError(core.FormatValidationError(err), "CommentHandler.Create"))
		return
	}

	created, err := h.service.Create(r.Context(), chi.URLParam(r, "offerId"), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToCommentResponse(created))
}
