package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kroawen/nest-auth-example/internal/model"
	"github.com/kroawen/nest-auth-example/internal/repository"
	"github.com/kroawen/nest-auth-example/internal/usecase"
	"github.com/kroawen/nest-auth-example/shared/httputil"
	"github.com/kroawen/nest-auth-example/shared/middleware"
	"github.com/kroawen/nest-auth-example/shared/validator"
)

// TodoHandler serves /todos. All routes sit behind the auth guard and the
// usecase scopes every operation to the authenticated owner.
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
	validator   *validator.Validator
	logger      *zerolog.Logger
}

func NewTodoHandler(
	todoUsecase usecase.TodoUsecase,
	validator *validator.Validator,
	logger *zerolog.Logger,
) *TodoHandler {
	return &TodoHandler{
		todoUsecase: todoUsecase,
		validator:   validator,
		logger:      logger,
	}
}

func (h *TodoHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Show)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner := middleware.UserFromContext(r.Context())
	if owner == nil {
		httputil.Unauthorized(w)
		return
	}

	var req CreateTodoRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.ValidationError(w, map[string]string{"body": "invalid request body"})
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		httputil.ValidationError(w, fields)
		return
	}

	todo, err := h.todoUsecase.CreateTodo(r.Context(), owner.ID, req.Text)
	if err != nil {
		h.logger.Error().Err(err).Msg("todo creation failed")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.JSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	owner := middleware.UserFromContext(r.Context())
	if owner == nil {
		httputil.Unauthorized(w)
		return
	}

	todos, err := h.todoUsecase.ListTodos(r.Context(), owner.ID)
	if err != nil {
		h.logger.Error().Err(err).Msg("todo listing failed")
		httputil.Error(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	if todos == nil {
		todos = []*model.Todo{}
	}

	httputil.JSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Show(w http.ResponseWriter, r *http.Request) {
	owner := middleware.UserFromContext(r.Context())
	if owner == nil {
		httputil.Unauthorized(w)
		return
	}

	todo, err := h.todoUsecase.GetTodo(r.Context(), owner.ID, chi.URLParam(r, "id"))
	if err != nil {
		h.respondTodoError(w, err, "todo lookup failed")
		return
	}

	httputil.JSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner := middleware.UserFromContext(r.Context())
	if owner == nil {
		httputil.Unauthorized(w)
		return
	}

	var req UpdateTodoRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.ValidationError(w, map[string]string{"body": "invalid request body"})
		return
	}

	if fields := h.validator.Struct(req); fields != nil {
		httputil.ValidationError(w, fields)
		return
	}

	if req.Text == nil && req.Done == nil {
		httputil.ValidationError(w, map[string]string{"body": "nothing to update"})
		return
	}

	todo, err := h.todoUsecase.UpdateTodo(r.Context(), owner.ID, chi.URLParam(r, "id"), repository.UpdateTodoParams{
		Text: req.Text,
		Done: req.Done,
	})
	if err != nil {
		h.respondTodoError(w, err, "todo update failed")
		return
	}

	httputil.JSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner := middleware.UserFromContext(r.Context())
	if owner == nil {
		httputil.Unauthorized(w)
		return
	}

	if err := h.todoUsecase.DeleteTodo(r.Context(), owner.ID, chi.URLParam(r, "id")); err != nil {
		h.respondTodoError(w, err, "todo deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoHandler) respondTodoError(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, repository.ErrNotFound) {
		httputil.Error(w, http.StatusNotFound, "todo not found")
		return
	}

	h.logger.Error().Err(err).Msg(msg)
	httputil.Error(w, http.StatusInternalServerError, "something went wrong")
}
