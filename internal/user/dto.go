// Rentora | 2026
// dto.go

package user

import "github.com/rentora/rentora/internal/core"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=12"`
	Name     string `json:"name" validate:"required,min=1,max=15"`
	Type     string `json:"type" validate:"required,oneof=regular pro"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse never carries the password digest.
type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	AvatarPath string `json:"avatarPath"`
	Type       string `json:"type"`
}

// LoggedUserResponse is the login shape: the user plus a fresh token.
type LoggedUserResponse struct {
	UserResponse
	Token string `json:"token"`
}

type UploadAvatarResponse struct {
	AvatarPath string `json:"avatarPath"`
}

func ToUserResponse(u *User, files *core.FileResolver) UserResponse {
	return UserResponse{
		ID:         u.ID.Hex(),
		Email:      u.Email,
		Name:       u.Name,
		AvatarPath: files.Resolve(u.AvatarPath),
		Type:       u.Type,
	}
}

func ToLoggedUserResponse(u *User, token string, files *core.FileResolver) LoggedUserResponse {
	return LoggedUserResponse{
		UserResponse: ToUserResponse(u, files),
		Token:        token,
	}
}
