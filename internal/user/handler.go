// Rentora | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/rentora/rentora/internal/config"
	"github.com/rentora/rentora/internal/core"
	"github.com/rentora/rentora/internal/middleware"
	"github.com/rentora/rentora/internal/offer"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
	files     *core.FileResolver
	storage   config.StorageConfig
}

func NewHandler(service *Service, files *core.FileResolver, storage config.StorageConfig) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		files:     files,
		storage:   storage,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(authenticate).Get("/login", h.CheckAuth)
		r.With(authenticate).Post("/logout", h.Logout)
		r.With(authenticate).Get("/favorites", h.Favorites)

		r.With(
			authenticate,
			middleware.ValidateObjectID("userId"),
			middleware.Upload(h.storage.UploadDirectory, "avatar", h.storage.MaxUploadBytes),
		).Post("/{userId}/avatar", h.UploadAvatar)
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationFailedError(core.FormatValidationError(err), "UserHandler.Register"))
		return
	}

	created, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			core.JSONError(w, core.DuplicateError("email", "UserHandler.Register"))
			return
		}
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToUserResponse(created, h.files))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		core.JSONError(w, core.ValidationFailedError(core.FormatValidationError(err), "UserHandler.Login"))
		return
	}

	u, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(w, core.UnauthorizedError("invalid email or password"))
			return
		}
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToLoggedUserResponse(u, token, h.files))
}

func (h *Handler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.CheckAuth(r.Context(), middleware.GetUserEmail(r.Context()))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToUserResponse(u, h.files))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(middleware.ExtractToken(r))
	core.NoContent(w)
}

// Favorites returns the caller's favorite offers, each with the
// favorite flag forced on.
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.Favorites(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, offer.ToFavoriteOfferResponses(offers, h.files))
}

func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	filename := middleware.GetUploadedFile(r.Context())
	if filename == "" {
		core.BadRequest(w, "avatar file is required")
		return
	}

	u, err := h.service.UpdateAvatar(r.Context(), chi.URLParam(r, "userId"), filename)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, UploadAvatarResponse{AvatarPath: h.files.Resolve(u.AvatarPath)})
}
