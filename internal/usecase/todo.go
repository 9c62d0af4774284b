package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kroawen/nest-auth-example/internal/model"
	"github.com/kroawen/nest-auth-example/internal/repository"
)

// TodoUsecase defines the interface for todo-related use cases. Every
// operation is scoped to the owner; a todo belonging to someone else behaves
// as if it did not exist.
type TodoUsecase interface {
	CreateTodo(ctx context.Context, ownerID bson.ObjectID, text string) (*model.Todo, error)
	GetTodo(ctx context.Context, ownerID bson.ObjectID, id string) (*model.Todo, error)
	ListTodos(ctx context.Context, ownerID bson.ObjectID) ([]*model.Todo, error)
	UpdateTodo(ctx context.Context, ownerID bson.ObjectID, id string, params repository.UpdateTodoParams) (*model.Todo, error)
	DeleteTodo(ctx context.Context, ownerID bson.ObjectID, id string) error
}

type todoUsecase struct {
	todoRepo repository.TodoRepository
}

func NewTodoUsecase(todoRepo repository.TodoRepository) TodoUsecase {
	return &todoUsecase{todoRepo: todoRepo}
}

func (u *todoUsecase) CreateTodo(ctx context.Context, ownerID bson.ObjectID, text string) (*model.Todo, error) {
	return u.todoRepo.CreateTodo(ctx, &model.Todo{
		OwnerID: ownerID,
		Text:    text,
	})
}

func (u *todoUsecase) GetTodo(ctx context.Context, ownerID bson.ObjectID, id string) (*model.Todo, error) {
	return u.todoRepo.GetTodo(ctx, id, ownerID)
}

func (u *todoUsecase) ListTodos(ctx context.Context, ownerID bson.ObjectID) ([]*model.Todo, error) {
	return u.todoRepo.ListTodos(ctx, ownerID)
}

func (u *todoUsecase) UpdateTodo(
	ctx context.Context,
	ownerID bson.ObjectID,
	id string,
	params repository.UpdateTodoParams,
) (*model.Todo, error) {
	return u.todoRepo.UpdateTodo(ctx, id, ownerID, params)
}

func (u *todoUsecase) DeleteTodo(ctx context.Context, ownerID bson.ObjectID, id string) error {
	return u.todoRepo.DeleteTodo(ctx, id, ownerID)
}
