// Package handler contains the chi HTTP handlers for the auth, profile and
// todo endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kroawen/nest-auth-example/internal/usecase"
	"github.com/kroawen/nest-auth-example/shared/httputil"
	"github.com/kroawen/nest-auth-example/shared/middleware"
	"github.com/kroawen/nest-auth-example/shared/validator"
)

// AuthHandler serves /auth: register, login and the current-session lookup.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.Validator
	logger      *zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validator.Validator,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.ValidationError(w, map[string]string{"body": "invalid request body"})
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		httputil.ValidationError(w, fields)
		return
	}

	user, token, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			httputil.Error(w, http.StatusConflict, "email already taken")
			return
		}

		h.logger.Error().Err(err).Msg("register failed")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	httputil.JSON(w, http.StatusCreated, newUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.ValidationError(w, map[string]string{"body": "invalid request body"})
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		httputil.ValidationError(w, fields)
		return
	}

	user, token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httputil.Unauthorized(w)
			return
		}

		h.logger.Error().Err(err).Msg("login failed")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	httputil.JSON(w, http.StatusOK, newUserResponse(user))
}

// Me returns the user the guard resolved for this request. No further lookup
// happens here.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		httputil.Unauthorized(w)
		return
	}

	httputil.JSON(w, http.StatusOK, newUserResponse(user))
}
