package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pharmacy_store/internal/common"
	"pharmacy_store/internal/domain/model"
	"pharmacy_store/internal/platform/database"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type mongoUserRepository struct {
	coll *mongo.Collection

	// uniqueness of username and email relies on the unique indexes, so no
	// user is inserted before they exist.
	indexMu sync.Mutex
	indexed bool
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(database.UsersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.ensureIndexes(ctx); err != nil {
		return fmt.Errorf("mongoUserRepository.Create: %w", err)
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("mongoUserRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}}, "FindByUsername")
}

// ensureIndexes creates the user indexes once; a failed attempt is retried
// on the next call.
func (r *mongoUserRepository) ensureIndexes(ctx context.Context) error {
	r.indexMu.Lock()
	defer r.indexMu.Unlock()
	if r.indexed {
		return nil
	}
	if err := database.EnsureUserIndexes(ctx, r.coll.Database()); err != nil {
		return err
	}
	r.indexed = true
	return nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.D, op string) (*model.User, error) {
	user := &model.User{}
	if err := r.coll.FindOne(ctx, filter).Decode(user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoUserRepository.%s: %w", op, err)
	}
	return user, nil
}
