package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pharmacy_store/internal/common"
	"pharmacy_store/internal/domain/model"
	"pharmacy_store/internal/platform/database"
)

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	// UpdateQuantity overwrites quantity only and returns the updated product.
	UpdateQuantity(ctx context.Context, id string, quantity float64) (*model.Product, error)
	// Delete removes the product and returns it as it was before deletion.
	Delete(ctx context.Context, id string) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}

type mongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{coll: db.Collection(database.ProductsCollection)}
}

func (r *mongoProductRepository) List(ctx context.Context) ([]model.Product, error) {
	return r.find(ctx, bson.D{}, "List")
}

func (r *mongoProductRepository) Create(ctx context.Context, product *model.Product) error {
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("mongoProductRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoProductRepository) UpdateQuantity(ctx context.Context, id string, quantity float64) (*model.Product, error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	product := &model.Product{}
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoProductRepository.UpdateQuantity: %w", err)
	}
	return product, nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) (*model.Product, error) {
	product := &model.Product{}
	if err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoProductRepository.Delete: %w", err)
	}
	return product, nil
}

func (r *mongoProductRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	return r.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}, "FindByIDs")
}

func (r *mongoProductRepository) find(ctx context.Context, filter bson.D, op string) ([]model.Product, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongoProductRepository.%s: %w", op, err)
	}
	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("mongoProductRepository.%s: %w", op, err)
	}
	return products, nil
}
