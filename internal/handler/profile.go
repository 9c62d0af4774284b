package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kroawen/nest-auth-example/internal/repository"
	"github.com/kroawen/nest-auth-example/internal/usecase"
	"github.com/kroawen/nest-auth-example/shared/httputil"
	"github.com/kroawen/nest-auth-example/shared/middleware"
	"github.com/kroawen/nest-auth-example/shared/validator"
)

// ProfileHandler serves /profile/{id}. All routes sit behind the auth guard.
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.Validator
	logger         *zerolog.Logger
}

func NewProfileHandler(
	profileUsecase usecase.ProfileUsecase,
	validator *validator.Validator,
	logger *zerolog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
		logger:         logger,
	}
}

func (h *ProfileHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.Show)
	r.Put("/{id}", h.Update)

	return r
}

func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, err := h.profileUsecase.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httputil.Error(w, http.StatusNotFound, "profile not found")
			return
		}

		h.logger.Error().Err(err).Msg("profile lookup failed")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.JSON(w, http.StatusOK, newProfileResponse(user))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.ValidationError(w, map[string]string{"body": "invalid request body"})
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		httputil.ValidationError(w, fields)
		return
	}

	current := middleware.UserFromContext(r.Context())
	if current == nil {
		httputil.Unauthorized(w)
		return
	}

	user, err := h.profileUsecase.UpdateProfile(r.Context(), current, chi.URLParam(r, "id"), usecase.UpdateProfileParams{
		Name:       req.Name,
		Phone:      req.Phone,
		Birthday:   req.Birthday,
		Website:    req.Website,
		Occupation: req.Occupation,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			httputil.Error(w, http.StatusForbidden, "forbidden")
		case errors.Is(err, repository.ErrNotFound):
			httputil.Error(w, http.StatusNotFound, "profile not found")
		default:
			h.logger.Error().Err(err).Msg("profile update failed")
			httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.JSON(w, http.StatusOK, newProfileResponse(user))
}
