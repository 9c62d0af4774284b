package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kroawen/nest-auth-example/internal/model"
)

// InMemoryUserRepository is a map-backed UserRepository used by tests. It
// enforces the same email uniqueness the mongo index does.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[bson.ObjectID]*model.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[bson.ObjectID]*model.User)}
}

func (r *InMemoryUserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}

	now := time.Now()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	r.users[user.ID] = &stored

	return user, nil
}

func (r *InMemoryUserRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[objectID]
	if !ok {
		return nil, ErrNotFound
	}

	cp := *user
	return &cp, nil
}

func (r *InMemoryUserRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}

	return nil, ErrNotFound
}

func (r *InMemoryUserRepository) UpdateUser(
	_ context.Context,
	id string,
	params UpdateUserParams,
) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[objectID]
	if !ok {
		return nil, ErrNotFound
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}
	if params.Profile != nil {
		user.Profile = *params.Profile
	}
	user.UpdatedAt = time.Now()

	cp := *user
	return &cp, nil
}

// DeleteUser removes a user outright. Only the in-memory implementation has
// it; tests use it to simulate a subject deleted after token issuance.
func (r *InMemoryUserRepository) DeleteUser(id bson.ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
}

// InMemoryTodoRepository is a map-backed TodoRepository used by tests.
type InMemoryTodoRepository struct {
	mu    sync.RWMutex
	todos map[bson.ObjectID]*model.Todo
}

func NewInMemoryTodoRepository() *InMemoryTodoRepository {
	return &InMemoryTodoRepository{todos: make(map[bson.ObjectID]*model.Todo)}
}

func (r *InMemoryTodoRepository) CreateTodo(_ context.Context, todo *model.Todo) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	todo.ID = bson.NewObjectID()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	stored := *todo
	r.todos[todo.ID] = &stored

	return todo, nil
}

func (r *InMemoryTodoRepository) GetTodo(_ context.Context, id string, ownerID bson.ObjectID) (*model.Todo, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.todos[objectID]
	if !ok || todo.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	cp := *todo
	return &cp, nil
}

func (r *InMemoryTodoRepository) ListTodos(_ context.Context, ownerID bson.ObjectID) ([]*model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var todos []*model.Todo
	for _, t := range r.todos {
		if t.OwnerID == ownerID {
			cp := *t
			todos = append(todos, &cp)
		}
	}

	// Newest first, matching the mongo implementation's created_at sort.
	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}

		return todos[i].ID.Hex() > todos[j].ID.Hex()
	})

	return todos, nil
}

func (r *InMemoryTodoRepository) UpdateTodo(
	_ context.Context,
	id string,
	ownerID bson.ObjectID,
	params UpdateTodoParams,
) (*model.Todo, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[objectID]
	if !ok || todo.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	if params.Text != nil {
		todo.Text = *params.Text
	}
	if params.Done != nil {
		todo.Done = *params.Done
	}
	todo.UpdatedAt = time.Now()

	cp := *todo
	return &cp, nil
}

func (r *InMemoryTodoRepository) DeleteTodo(_ context.Context, id string, ownerID bson.ObjectID) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[objectID]
	if !ok || todo.OwnerID != ownerID {
		return ErrNotFound
	}

	delete(r.todos, objectID)

	return nil
}
