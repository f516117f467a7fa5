package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"pharmacy_store/internal/common"
	"pharmacy_store/internal/domain/model"
	"pharmacy_store/internal/domain/repository"
)

// OrderPublisher announces placed orders to downstream consumers.
type OrderPublisher interface {
	Publish(ctx context.Context, orderID string) error
}

type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   OrderPublisher // nil when no queue is configured
	logger      *slog.Logger
	now         func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	publisher OrderPublisher,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type PlaceOrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

type PlaceOrderRequest struct {
	UserID          string           `json:"userId"`
	Items           []PlaceOrderItem `json:"items"`
	TotalAmount     float64          `json:"totalAmount"`
	DeliveryAddress any              `json:"deliveryAddress"`

	invalid castErrors
}

// UnmarshalJSON casts scalars the way the order schema does. A value that
// cannot be cast still counts as given, so the request is rejected as a
// failed placement rather than as missing fields.
func (r *PlaceOrderRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID          model.Text      `json:"userId"`
		Items           json.RawMessage `json:"items"`
		TotalAmount     model.Number    `json:"totalAmount"`
		DeliveryAddress any             `json:"deliveryAddress"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = PlaceOrderRequest{
		UserID:          raw.UserID.Value,
		TotalAmount:     raw.TotalAmount.Value,
		DeliveryAddress: raw.DeliveryAddress,
	}
	r.invalid.check("userId", raw.UserID)
	r.invalid.check("totalAmount", raw.TotalAmount)
	r.decodeItems(raw.Items)
	return nil
}

func (r *PlaceOrderRequest) decodeItems(data json.RawMessage) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		var v any
		if len(data) > 0 && json.Unmarshal(data, &v) == nil && present(v) {
			r.invalid.set("items", `Cast to [OrderItem] failed for value `+string(data)+` at path "items"`)
		}
		return
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		r.invalid.set("items", `Cast to [OrderItem] failed for value `+string(data)+` at path "items"`)
		return
	}
	r.Items = make([]PlaceOrderItem, 0, len(elems))
	for i, elem := range elems {
		path := "items." + strconv.Itoa(i)
		var item struct {
			ProductID model.Text   `json:"productId"`
			Quantity  model.Number `json:"quantity"`
			Price     model.Number `json:"price"`
		}
		if err := json.Unmarshal(elem, &item); err != nil {
			// keep the slot so the items still count as given
			r.invalid.set(path, `Cast to OrderItem failed for value `+string(elem)+` at path "`+path+`"`)
			r.Items = append(r.Items, PlaceOrderItem{})
			continue
		}
		r.invalid.check(path+".productId", item.ProductID)
		r.invalid.check(path+".quantity", item.Quantity)
		r.invalid.check(path+".price", item.Price)
		r.Items = append(r.Items, PlaceOrderItem{
			ProductID: item.ProductID.Value,
			Quantity:  item.Quantity.Value,
			Price:     item.Price.Value,
		})
	}
}

func (r *PlaceOrderRequest) complete() bool {
	return (r.UserID != "" || r.invalid.has("userId")) &&
		(len(r.Items) > 0 || r.invalid.has("items")) &&
		(r.TotalAmount != 0 || r.invalid.has("totalAmount")) &&
		present(r.DeliveryAddress)
}

// present treats JSON null, "", false and 0 as absent.
func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	default:
		return true
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*model.Order, error) {
	s.logger.DebugContext(ctx, "received order data",
		"user_id", req.UserID,
		"items", len(req.Items),
		"total_amount", req.TotalAmount,
		"delivery_address", req.DeliveryAddress,
	)

	if !req.complete() {
		return nil, common.Errorf("missing required fields in order data: %w", common.ErrBadRequest)
	}
	if len(req.invalid) > 0 {
		v := model.NewValidationError("Order")
		v.Add(req.invalid.messages()...)
		s.logger.ErrorContext(ctx, "error placing order", "user_id", req.UserID, "error", v)
		return nil, common.Errorf("failed to place order: %w", v)
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	order := &model.Order{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		Items:           items,
		TotalAmount:     req.TotalAmount,
		DeliveryAddress: req.DeliveryAddress,
		CreatedAt:       s.now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "error placing order", "user_id", req.UserID, "error", err)
		return nil, common.Errorf("failed to place order: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, order.ID); err != nil {
			// The order is stored; only the notification is lost.
			s.logger.ErrorContext(ctx, "failed to publish placed order", "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}

// ListOrdersForUser returns the user's orders with every item's product
// resolved through one batch lookup over the distinct product ids.
func (s *OrderService) ListOrdersForUser(ctx context.Context, userID string) ([]model.ExpandedOrder, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var ids []string
	for i := range orders {
		for _, id := range orders[i].ProductIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	expanded := make([]model.ExpandedOrder, 0, len(orders))
	for i := range orders {
		expanded = append(expanded, orders[i].Expand(byID))
	}
	return expanded, nil
}
