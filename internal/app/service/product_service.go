package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"pharmacy_store/internal/common"
	"pharmacy_store/internal/domain/model"
	"pharmacy_store/internal/domain/repository"
)

type ProductService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
	now         func() time.Time
}

func NewProductService(productRepo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateProductRequest accepts the product schema fields; anything else in
// the body is dropped. Price and quantity are pointers so that an explicit
// zero is distinguishable from a missing field.
type CreateProductRequest struct {
	ProductName string   `json:"productName"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageURL"`

	invalid castErrors
}

// UnmarshalJSON casts numeric strings and booleans to numbers and scalars
// to text. Values that cannot be cast are reported by CreateProduct.
func (r *CreateProductRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProductName model.Text   `json:"productName"`
		Price       model.Number `json:"price"`
		Quantity    model.Number `json:"quantity"`
		Description model.Text   `json:"description"`
		ImageURL    model.Text   `json:"imageURL"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = CreateProductRequest{
		ProductName: raw.ProductName.Value,
		Price:       raw.Price.Ptr(),
		Quantity:    raw.Quantity.Ptr(),
		Description: raw.Description.Value,
		ImageURL:    raw.ImageURL.Value,
	}
	r.invalid.check("productName", raw.ProductName)
	r.invalid.check("price", raw.Price)
	r.invalid.check("quantity", raw.Quantity)
	r.invalid.check("description", raw.Description)
	r.invalid.check("imageURL", raw.ImageURL)
	return nil
}

type UpdateProductRequest struct {
	Quantity *float64 `json:"quantity"`

	invalid castErrors
}

func (r *UpdateProductRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Quantity model.Number `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = UpdateProductRequest{Quantity: raw.Quantity.Ptr()}
	r.invalid.check("quantity", raw.Quantity)
	return nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*model.Product, error) {
	v := model.NewValidationError("Product")
	v.Add(req.invalid.messages()...)
	v.Require("productName", req.ProductName != "" || req.invalid.has("productName"))
	v.Require("price", req.Price != nil || req.invalid.has("price"))
	v.Require("quantity", req.Quantity != nil || req.invalid.has("quantity"))
	if err := v.Err(); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          uuid.NewString(),
		ProductName: req.ProductName,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Slug:        slug.Make(req.ProductName),
		CreatedAt:   s.now(),
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "product created", "product_id", product.ID, "slug", product.Slug)
	return product, nil
}

// UpdateQuantity overwrites the stored quantity; no other field changes.
func (s *ProductService) UpdateQuantity(ctx context.Context, id string, req UpdateProductRequest) (*model.Product, error) {
	if req.Quantity == nil && !req.invalid.has("quantity") {
		return nil, common.Errorf("quantity is required to update product: %w", common.ErrBadRequest)
	}
	if len(req.invalid) > 0 {
		v := model.NewValidationError("Product")
		v.Add(req.invalid.messages()...)
		return nil, v
	}
	return s.productRepo.UpdateQuantity(ctx, id, *req.Quantity)
}

// DeleteProduct removes the product and returns its last stored state.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.productRepo.Delete(ctx, id)
}
