package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kroawen/nest-auth-example/internal/model"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*model.User, error)
}

// UpdateUserParams defines the optional parameters for updating a user.
// Only the fields that are not nil will be updated.
type UpdateUserParams struct {
	Name         *string
	PasswordHash *string
	Profile      *model.Profile
}

const userCollection = "users"

type userMongoRepository struct {
	db *mongo.Database
}

// NewUserMongoRepository creates the users collection access layer and
// ensures the unique email index exists. Email uniqueness is enforced here,
// by the store, not by a check-then-act in the callers.
func NewUserMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) UserRepository {
	collection := db.Collection(userCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create user indexes")
	}

	return &userMongoRepository{db: db}
}

func (r *userMongoRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}

		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return user, nil
}

func (r *userMongoRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	result := r.db.Collection(userCollection).FindOne(ctx, bson.M{"_id": objectID})

	return decodeUser(result)
}

func (r *userMongoRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	result := r.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email})

	return decodeUser(result)
}

func (r *userMongoRepository) UpdateUser(
	ctx context.Context,
	id string,
	params UpdateUserParams,
) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.PasswordHash != nil {
		updateMap["password_hash"] = *params.PasswordHash
	}
	if params.Profile != nil {
		updateMap["profile"] = *params.Profile
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no user fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	return decodeUser(result)
}

func decodeUser(result *mongo.SingleResult) (*model.User, error) {
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var user model.User
	if err := result.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}
