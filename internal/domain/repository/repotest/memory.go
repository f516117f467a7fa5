// Package repotest provides in-memory repositories for tests. They mirror the
// Mongo implementations' error contract: ErrNotFound for missing records and
// ErrConflict for duplicate usernames or emails.
package repotest

import (
	"context"
	"fmt"
	"sync"

	"pharmacy_store/internal/common"
	"pharmacy_store/internal/domain/model"
	"pharmacy_store/internal/domain/repository"
)

var (
	_ repository.UserRepository    = (*UserRepository)(nil)
	_ repository.ProductRepository = (*ProductRepository)(nil)
	_ repository.OrderRepository   = (*OrderRepository)(nil)
)

type UserRepository struct {
	mu    sync.Mutex
	users []model.User
	// Err, when set, is returned by every call.
	Err error
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Username == username })
}

func (r *UserRepository) find(match func(model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

// Count returns the number of stored users.
func (r *UserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type ProductRepository struct {
	mu       sync.Mutex
	products []model.Product
	Err      error
	// FindByIDsCalls counts batch lookups.
	FindByIDsCalls int
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepository) Create(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *ProductRepository) UpdateQuantity(_ context.Context, id string, quantity float64) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Quantity = quantity
			updated := r.products[i]
			return &updated, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *ProductRepository) Delete(_ context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.products {
		if r.products[i].ID == id {
			deleted := r.products[i]
			r.products = append(r.products[:i], r.products[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *ProductRepository) FindByIDs(_ context.Context, ids []string) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.FindByIDsCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := []model.Product{}
	for _, p := range r.products {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Get returns the stored product with id, or nil.
func (r *ProductRepository) Get(id string) *model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found
		}
	}
	return nil
}

type OrderRepository struct {
	mu     sync.Mutex
	orders []model.Order
	Err    error
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	stored := *order
	stored.Items = append([]model.OrderItem(nil), order.Items...)
	r.orders = append(r.orders, stored)
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, o := range r.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *OrderRepository) FindByUserID(_ context.Context, userID string) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := []model.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Count returns the number of stored orders.
func (r *OrderRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}
