package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kroawen/nest-auth-example/internal/model"
)

// TodoRepository defines the interface for todo-related database operations.
// Every lookup is scoped to an owner so one user can never read or mutate
// another user's todos.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo *model.Todo) (*model.Todo, error)
	GetTodo(ctx context.Context, id string, ownerID bson.ObjectID) (*model.Todo, error)
	ListTodos(ctx context.Context, ownerID bson.ObjectID) ([]*model.Todo, error)
	UpdateTodo(ctx context.Context, id string, ownerID bson.ObjectID, params UpdateTodoParams) (*model.Todo, error)
	DeleteTodo(ctx context.Context, id string, ownerID bson.ObjectID) error
}

// UpdateTodoParams defines the optional parameters for updating a todo.
type UpdateTodoParams struct {
	Text *string
	Done *bool
}

const todoCollection = "todos"

type todoMongoRepository struct {
	db *mongo.Database
}

func NewTodoMongoRepository(db *mongo.Database) TodoRepository {
	return &todoMongoRepository{db: db}
}

func (r *todoMongoRepository) CreateTodo(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	result, err := r.db.Collection(todoCollection).InsertOne(ctx, todo)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		todo.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return todo, nil
}

func (r *todoMongoRepository) GetTodo(ctx context.Context, id string, ownerID bson.ObjectID) (*model.Todo, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	result := r.db.Collection(todoCollection).FindOne(ctx, bson.M{"_id": objectID, "owner_id": ownerID})

	return decodeTodo(result)
}

func (r *todoMongoRepository) ListTodos(ctx context.Context, ownerID bson.ObjectID) ([]*model.Todo, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(todoCollection).Find(ctx, bson.M{"owner_id": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var todos []*model.Todo
	for cursor.Next(ctx) {
		var todo model.Todo
		if err := cursor.Decode(&todo); err != nil {
			return nil, err
		}
		todos = append(todos, &todo)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

func (r *todoMongoRepository) UpdateTodo(
	ctx context.Context,
	id string,
	ownerID bson.ObjectID,
	params UpdateTodoParams,
) (*model.Todo, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	updateMap := bson.M{}
	if params.Text != nil {
		updateMap["text"] = *params.Text
	}
	if params.Done != nil {
		updateMap["done"] = *params.Done
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no todo fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(todoCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "owner_id": ownerID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	return decodeTodo(result)
}

func (r *todoMongoRepository) DeleteTodo(ctx context.Context, id string, ownerID bson.ObjectID) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	result, err := r.db.Collection(todoCollection).DeleteOne(ctx, bson.M{"_id": objectID, "owner_id": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func decodeTodo(result *mongo.SingleResult) (*model.Todo, error) {
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var todo model.Todo
	if err := result.Decode(&todo); err != nil {
		return nil, err
	}

	return &todo, nil
}
