package handler

import (
	"time"

	"github.com/kroawen/nest-auth-example/internal/model"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name       string     `json:"name"       validate:"required"`
	Phone      string     `json:"phone"      validate:"omitempty,max=64"`
	Birthday   *time.Time `json:"birthday"`
	Website    string     `json:"website"    validate:"omitempty,url"`
	Occupation string     `json:"occupation" validate:"omitempty,max=128"`
}

type CreateTodoRequest struct {
	Text string `json:"text" validate:"required"`
}

type UpdateTodoRequest struct {
	Text *string `json:"text" validate:"omitempty,min=1"`
	Done *bool   `json:"done"`
}

// UserResponse is the representation of a user returned by the auth
// endpoints. It never carries the password hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileResponse extends UserResponse with the profile subdocument.
type ProfileResponse struct {
	UserResponse
	Profile model.Profile `json:"profile"`
}

func newUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
	}
}

func newProfileResponse(user *model.User) ProfileResponse {
	return ProfileResponse{
		UserResponse: newUserResponse(user),
		Profile:      user.Profile,
	}
}
