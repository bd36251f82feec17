// Rentora | 2026
// handler.go

package offer

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/core"
	"github.com/rentora/rentora/internal/middleware"
)

// FavoriteStore is the slice of the user service the offer surface
// needs: the per-viewer favorite set and the two favorite mutations.
type FavoriteStore interface {
	FavoriteSet(ctx context.Context, userID string) (map[string]bool, error)
	AddFavorite(ctx context.Context, userID, offerID string) error
	RemoveFavorite(ctx context.Context, userID, offerID string) error
}

type Handler struct {
	service   *Service
	favorites FavoriteStore
	validator *validator.Validate
	files     *core.FileResolver
	storage   config.StorageConfig
}

func NewHandler(service *Service, favorites FavoriteStore, files *core.FileResolver, storage config.StorageConfig) *Handler {
	return &Handler{
		service:   service,
		favorites: favorites,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		files:     files,
		storage:   storage,
	}
}

// RegisterRoutes mounts the offer surface. authenticate rejects
// anonymous callers; identify resolves a token when present but lets
// anonymous callers through.
func (h *Handler) RegisterRoutes(r chi.Router, authenticate, identify func(http.Handler) http.Handler) {
	objectID := middleware.ValidateObjectID("offerId")
	exists := middleware.RequireExists("offerId", "offer", h.service.ExistsByID)

	r.Route("/offers", func(r chi.Router) {
		r.With(identify).Get("/", h.Index)
		r.With(authenticate).Post("/", h.Create)

		r.Get("/premium/{city}", h.ShowPremium)

		r.Route("/favorites/{offerId}", func(r chi.Router) {
			r.Use(authenticate, objectID, exists)
			r.Post("/", h.AddFavorite)
			r.Delete("/", h.RemoveFavorite)
		})

		r.Route("/{offerId}", func(r chi.Router) {
			r.Use(objectID, exists)

			r.With(identify).Get("/", h.Show)
			r.With(authenticate).Patch("/", h.Update)
			r.With(authenticate).Delete("/", h.Delete)

			upload := func(field string) func(http.Handler) http.Handler {
				return middleware.Upload(h.storage.UploadDirectory, field, h.storage.MaxUploadBytes)
			}
			r.With(authenticate, upload("previewImage")).Post("/preview-image", h.UploadPreviewImage)
			r.With(authenticate, upload("image")).Post("/image", h.UploadImage)
			r.With(authenticate).Delete("/image", h.RemoveImage)
		})
	})
}

// Index lists offers newest first. An authenticated viewer gets the
// favorite flag resolved against their own favorites.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var count int64
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			core.JSONError(w, core.BadRequestError("count must be a non-negative integer", "OfferHandler"))
			return
		}
		count = parsed
	}

	offers, err := h.service.List(r.Context(), count)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	favorites, err := h.viewerFavorites(r)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToOfferListResponse(offers, favorites, h.files))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationFailedError(core.FormatValidationError(err), "OfferHandler.Create"))
		return
	}

	created, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToOfferResponse(created, false, h.files))
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Get(r.Context(), chi.URLParam(r, "offerId"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	favorites, err := h.viewerFavorites(r)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToOfferResponse(o, favorites[o.ID.Hex()], h.files))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationFailedError(core.FormatValidationError(err), "OfferHandler.Update"))
		return
	}

	offerID := chi.URLParam(r, "offerId")
	if err := h.requireOwner(w, r, offerID); err != nil {
		return
	}

	updated, err := h.service.Update(r.Context(), offerID, req)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToOfferResponse(updated, false, h.files))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	offerID := chi.URLParam(r, "offerId")
	if err := h.requireOwner(w, r, offerID); err != nil {
		return
	}

	if err := h.service.Delete(r.Context(), offerID); err != nil {
		core.JSONError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ShowPremium(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.PremiumByCity(r.Context(), chi.URLParam(r, "city"))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToOfferListResponse(offers, nil, h.files))
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	err := h.favorites.AddFavorite(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "offerId"))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.NoContent(w)
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	err := h.favorites.RemoveFavorite(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "offerId"))
	if err != nil {
		core.JSONError(w, err)
		return
	}
	core.NoContent(w)
}

func (h *Handler) UploadPreviewImage(w http.ResponseWriter, r *http.Request) {
	offerID := chi.URLParam(r, "offerId")
	if err := h.requireOwner(w, r, offerID); err != nil {
		return
	}

	filename := middleware.GetUploadedFile(r.Context())
	if filename == "" {
		core.BadRequest(w, "previewImage file is required")
		return
	}

	if _, err := h.service.SetPreviewImage(r.Context(), offerID, filename); err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, UploadPreviewResponse{PreviewImage: h.files.Resolve(filename)})
}

func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	offerID := chi.URLParam(r, "offerId")
	if err := h.requireOwner(w, r, offerID); err != nil {
		return
	}

	filename := middleware.GetUploadedFile(r.Context())
	if filename == "" {
		core.BadRequest(w, "image file is required")
		return
	}

	if err := h.service.AddImage(r.Context(), offerID, filename); err != nil {
		core.JSONError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	var req RemoveImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationFailedError(core.FormatValidationError(err), "OfferHandler.RemoveImage"))
		return
	}

	offerID := chi.URLParam(r, "offerId")
	if err := h.requireOwner(w, r, offerID); err != nil {
		return
	}

	if err := h.service.RemoveImage(r.Context(), offerID, req.Image); err != nil {
		core.JSONError(w, err)
		return
	}

	core.NoContent(w)
}

// requireOwner writes the error response itself when the caller does
// not own the offer; a non-nil return tells the handler to stop.
func (h *Handler) requireOwner(w http.ResponseWriter, r *http.Request, offerID string) error {
	o, err := h.service.Get(r.Context(), offerID)
	if err != nil {
		core.JSONError(w, err)
		return err
	}

	if !core.IsOwner(o.OwnerHex(), middleware.GetUserID(r.Context())) {
		appErr := core.NotOwnerError("OfferHandler")
		core.JSONError(w, appErr)
		return appErr
	}
	return nil
}

func (h *Handler) viewerFavorites(r *http.Request) (map[string]bool, error) {
	if !middleware.IsAuthenticated(r.Context()) {
		return nil, nil
	}
	return h.favorites.FavoriteSet(r.Context(), middleware.GetUserID(r.Context()))
}
