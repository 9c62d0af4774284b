package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/kroawen/nest-auth-example/internal/model"
	"github.com/kroawen/nest-auth-example/internal/repository"
)

// ErrForbidden is returned when an authenticated user tries to mutate a
// profile other than their own.
var ErrForbidden = errors.New("forbidden")

// ProfileUsecase defines the interface for profile-related use cases.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, current *model.User, userID string, params UpdateProfileParams) (*model.User, error)
}

// UpdateProfileParams defines the parameters for updating a user profile.
type UpdateProfileParams struct {
	Name       string
	Phone      string
	Birthday   *time.Time
	Website    string
	Occupation string
}

type profileUsecase struct {
	userRepo repository.UserRepository
}

func NewProfileUsecase(userRepo repository.UserRepository) ProfileUsecase {
	return &profileUsecase{userRepo: userRepo}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	return u.userRepo.GetUser(ctx, userID)
}

func (u *profileUsecase) UpdateProfile(
	ctx context.Context,
	current *model.User,
	userID string,
	params UpdateProfileParams,
) (*model.User, error) {
	if current.ID.Hex() != userID {
		return nil, ErrForbidden
	}

	return u.userRepo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		Name: &params.Name,
		Profile: &model.Profile{
			Phone:      params.Phone,
			Birthday:   params.Birthday,
			Website:    params.Website,
			Occupation: params.Occupation,
		},
	})
}
