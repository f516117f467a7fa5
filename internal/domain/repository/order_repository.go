package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pharmacy_store/internal/common"
	"pharmacy_store/internal/domain/model"
	"pharmacy_store/internal/platform/database"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]model.Order, error)
}

type mongoOrderRepository struct {
	coll *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{coll: db.Collection(database.OrdersCollection)}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *model.Order) error {
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("mongoOrderRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoOrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	order := &model.Order{}
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoOrderRepository.FindByID: %w", err)
	}
	return order, nil
}

func (r *mongoOrderRepository) FindByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userId", Value: userID}})
	if err != nil {
		return nil, fmt.Errorf("mongoOrderRepository.FindByUserID: %w", err)
	}
	orders := []model.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("mongoOrderRepository.FindByUserID: %w", err)
	}
	return orders, nil
}
