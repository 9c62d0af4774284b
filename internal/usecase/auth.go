package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kroawen/nest-auth-example/internal/config"
	"github.com/kroawen/nest-auth-example/internal/model"
	"github.com/kroawen/nest-auth-example/internal/repository"
	"github.com/kroawen/nest-auth-example/shared/auth"
	"github.com/kroawen/nest-auth-example/shared/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, string, error)
	Login(ctx context.Context, params LoginParams) (*model.User, string, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

var (
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so a caller cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type authUsecase struct {
	userRepo repository.UserRepository
	jwtAuth  auth.JWTAuthenticator
	cfg      *config.Config
	logger   *zerolog.Logger
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	jwtAuth auth.JWTAuthenticator,
	cfg *config.Config,
	logger *zerolog.Logger,
) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwtAuth:  jwtAuth,
		cfg:      cfg,
		logger:   logger,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, string, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, "", err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Name:         params.Name,
		Email:        NormalizeEmail(params.Email),
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrUserAlreadyExists
		}

		return nil, "", err
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*model.User, string, error) {
	user, err := u.verifyCredentials(ctx, params.Email, params.Password)
	if err != nil {
		return nil, "", err
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// verifyCredentials resolves the user by email and checks the password
// against the stored hash. Unknown email and password mismatch both return
// ErrInvalidCredentials.
func (u *authUsecase) verifyCredentials(ctx context.Context, email, password string) (*model.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := security.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (u *authUsecase) issueToken(user *model.User) (string, error) {
	return u.jwtAuth.GenerateSessionToken(user.ID.Hex(), u.cfg.Token.Secret, u.cfg.Token.ExpiresIn)
}

// NormalizeEmail lowercases and trims an email address. Lookups and stored
// emails go through it so comparison is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
